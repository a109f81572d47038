package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidDate checks a "YYYY-MM-DD" calendar date string.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := datetime.ParseDate(dateStr)
	return date, err == nil
}

// IsValidClock checks an "HH:MM" time-of-day string.
func IsValidClock(clockStr string) bool {
	_, ok := datetime.ParseClock(clockStr)
	return ok
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
