package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
	"github.com/hrmflow/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetEmployeeLeaves(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	approved, err := l.leaveService.ApproveLeave(r.Context(), id)
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", approved)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rejected, err := l.leaveService.RejectLeave(r.Context(), id)
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := l.leaveService.DeleteLeave(r.Context(), id); err != nil {
		slog.Error("Delete leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

// GetEmployeeLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) GetEmployeeLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	leaves, err := l.leaveService.GetEmployeeLeaves(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListByRange implements LeaveHandler.
func (l *LeaveHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	filter := leave.RangeFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	companyID := r.URL.Query().Get("company_id")

	leaves, err := l.leaveService.ListByRange(r.Context(), filter, companyID)
	if err != nil {
		slog.Error("ListByRange leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
