package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/hrmflow/hrm-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByCycle(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.AddHoliday(r.Context(), req)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", created)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.RemoveHoliday(r.Context(), id); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", nil)
}

// ListByCycle implements HolidayHandler.
func (h *HolidayHandlerImpl) ListByCycle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	companyID := r.URL.Query().Get("company_id")

	holidays, err := h.holidayService.ListByCycle(r.Context(), month, companyID)
	if err != nil {
		slog.Error("ListByCycle holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
