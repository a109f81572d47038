package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/datetime"
	attendancesvc "github.com/hrmflow/hrm-backend-go/internal/service/attendance"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
}

func NewHolidayService(db *database.DB, holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:                db,
		HolidayRepository: holidayRepo,
	}
}

// AddHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) AddHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := h.HolidayRepository.GetByDate(ctx, req.Date, req.CompanyID)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to check existing holiday: %w", err)
	}
	if existing != nil {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	}

	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		CompanyID: req.CompanyID,
		Date:      req.Date,
		Name:      req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

// RemoveHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) RemoveHoliday(ctx context.Context, id string) error {
	if err := h.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// ListByCycle implements holiday.HolidayService. ref anchors the pay
// cycle the same way the monthly status matrix does, so both views
// agree on which holidays belong to the "month". ref is a date inside
// the anchor month, not the cycle's first day.
func (h *HolidayServiceImpl) ListByCycle(ctx context.Context, ref string, companyID string) ([]holiday.HolidayResponse, error) {
	anchor, err := datetime.ParseDate(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to parse month: %w", err)
	}

	from, to := attendancesvc.PayCycleRange(anchor)
	holidays, err := h.HolidayRepository.ListByRange(ctx, datetime.FormatDate(from), datetime.FormatDate(to), companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, mapHolidayToResponse(hol))
	}
	return responses, nil
}

// mapHolidayToResponse converts a Holiday entity to HolidayResponse
func mapHolidayToResponse(hol holiday.Holiday) holiday.HolidayResponse {
	var weekday string
	if d, err := datetime.ParseDate(hol.Date); err == nil {
		weekday = d.Format("Monday")
	}

	return holiday.HolidayResponse{
		ID:      hol.ID,
		Date:    hol.Date,
		Weekday: weekday,
		Name:    hol.Name,
	}
}
