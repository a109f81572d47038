package attendance

import (
	"testing"
	"time"

	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
)

func TestPayCycleRange(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		wantFrom string
		wantTo   string
	}{
		{
			name:     "mid-month reference",
			ref:      "2024-03-15",
			wantFrom: "2024-02-22",
			wantTo:   "2024-03-21",
		},
		{
			name:     "reference on cycle start day",
			ref:      "2024-03-22",
			wantFrom: "2024-02-22",
			wantTo:   "2024-03-21",
		},
		{
			name:     "reference on first of month",
			ref:      "2024-05-01",
			wantFrom: "2024-04-22",
			wantTo:   "2024-05-21",
		},
		{
			name:     "january straddles the year boundary",
			ref:      "2024-01-10",
			wantFrom: "2023-12-22",
			wantTo:   "2024-01-21",
		},
		{
			name:     "march after a leap february",
			ref:      "2023-03-05",
			wantFrom: "2023-02-22",
			wantTo:   "2023-03-21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := datetime.ParseDate(tt.ref)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.ref, err)
			}

			from, to := PayCycleRange(ref)
			if got := datetime.FormatDate(from); got != tt.wantFrom {
				t.Errorf("PayCycleRange(%s) from = %s, want %s", tt.ref, got, tt.wantFrom)
			}
			if got := datetime.FormatDate(to); got != tt.wantTo {
				t.Errorf("PayCycleRange(%s) to = %s, want %s", tt.ref, got, tt.wantTo)
			}
		})
	}
}

func TestBuildCalendarLength(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want int
	}{
		// Feb 22 - Mar 21 over a leap February: 8 + 21 = 29 days.
		{name: "leap february window", ref: "2024-03-15", want: 29},
		{name: "common february window", ref: "2023-03-15", want: 28},
		// Dec 22 - Jan 21 crosses the year: 10 + 21 = 31 days.
		{name: "year boundary window", ref: "2024-01-10", want: 31},
		{name: "thirty day predecessor", ref: "2024-05-15", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := datetime.ParseDate(tt.ref)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.ref, err)
			}

			cells := BuildCalendar(ref)
			if len(cells) != tt.want {
				t.Errorf("BuildCalendar(%s) length = %d, want %d", tt.ref, len(cells), tt.want)
			}
		})
	}
}

func TestBuildCalendarCells(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	cells := BuildCalendar(ref)

	first := CalendarCell{Day: "22", Month: "02", Weekday: "Thu"}
	if cells[0] != first {
		t.Errorf("first cell = %+v, want %+v", cells[0], first)
	}

	last := CalendarCell{Day: "21", Month: "03", Weekday: "Thu"}
	if cells[len(cells)-1] != last {
		t.Errorf("last cell = %+v, want %+v", cells[len(cells)-1], last)
	}

	// The leap day sits at position 22 Feb .. 29 Feb inclusive.
	leap := CalendarCell{Day: "29", Month: "02", Weekday: "Thu"}
	if cells[7] != leap {
		t.Errorf("cell[7] = %+v, want %+v", cells[7], leap)
	}
}

func TestBuildCalendarConsecutive(t *testing.T) {
	ref := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	from, to := PayCycleRange(ref)

	cells := BuildCalendar(ref)
	d := from
	for i, cell := range cells {
		want := CalendarCell{
			Day:     d.Format("02"),
			Month:   d.Format("01"),
			Weekday: d.Format("Mon"),
		}
		if cell != want {
			t.Fatalf("cell[%d] = %+v, want %+v", i, cell, want)
		}
		d = d.AddDate(0, 0, 1)
	}
	if !d.After(to) {
		t.Errorf("calendar stopped at %s before window end %s",
			datetime.FormatDate(d), datetime.FormatDate(to))
	}
}
