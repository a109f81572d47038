package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrmflow/hrm-backend-go/internal/domain/attendance"
	"github.com/hrmflow/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
	GetMonthlyStatus(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Create implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.attendanceService.AddAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Create attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", created)
}

// Update implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := a.attendanceService.UpdateAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Update attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", updated)
}

// Delete implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		slog.Error("Delete attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// GetByID implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := a.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// GetDetails implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetDetails(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DetailsFilter{
		EmployeeID: chi.URLParam(r, "employeeID"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}

	details, err := a.attendanceService.GetDetails(r.Context(), filter)
	if err != nil {
		slog.Error("GetDetails service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// GetMonthlyStatus implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMonthlyStatus(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MonthlyStatusFilter{
		Month:     r.URL.Query().Get("month"),
		CompanyID: r.URL.Query().Get("company_id"),
	}

	status, err := a.attendanceService.GetMonthlyStatus(r.Context(), filter)
	if err != nil {
		slog.Error("GetMonthlyStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
