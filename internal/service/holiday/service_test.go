package holiday

import (
	"context"
	"fmt"
	"testing"

	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
	nextID   int
}

func (f *fakeHolidayRepo) Create(_ context.Context, data holiday.Holiday) (holiday.Holiday, error) {
	f.nextID++
	data.ID = fmt.Sprintf("hol-%d", f.nextID)
	f.holidays = append(f.holidays, data)
	return data, nil
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date, companyID string) (*holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.Date == date && h.CompanyID == companyID {
			match := h
			return &match, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	for i, h := range f.holidays {
		if h.ID == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			return nil
		}
	}
	return holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) ListByRange(_ context.Context, from, to, companyID string) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date < from || h.Date > to {
			continue
		}
		if companyID != "" && h.CompanyID != companyID {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func TestHolidayService_AddHoliday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(nil, &fakeHolidayRepo{})

	name := "Company Anniversary"
	created, err := svc.AddHoliday(ctx, holiday.CreateHolidayRequest{
		CompanyID: "co-1",
		Date:      "2024-03-08",
		Name:      &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-08", created.Date)
	assert.Equal(t, "Friday", created.Weekday)
	require.NotNil(t, created.Name)
	assert.Equal(t, name, *created.Name)
}

func TestHolidayService_AddHoliday_Duplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(nil, &fakeHolidayRepo{})

	req := holiday.CreateHolidayRequest{CompanyID: "co-1", Date: "2024-03-08"}

	_, err := svc.AddHoliday(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddHoliday(ctx, req)
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestHolidayService_AddHoliday_SameDateOtherCompany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(nil, &fakeHolidayRepo{})

	_, err := svc.AddHoliday(ctx, holiday.CreateHolidayRequest{CompanyID: "co-1", Date: "2024-03-08"})
	require.NoError(t, err)

	_, err = svc.AddHoliday(ctx, holiday.CreateHolidayRequest{CompanyID: "co-2", Date: "2024-03-08"})
	assert.NoError(t, err)
}

func TestHolidayService_RemoveHoliday_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewHolidayService(nil, &fakeHolidayRepo{})

	err := svc.RemoveHoliday(ctx, "missing")
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestHolidayService_ListByCycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{ID: "hol-1", CompanyID: "co-1", Date: "2024-02-23"},
		{ID: "hol-2", CompanyID: "co-1", Date: "2024-03-08"},
		// Outside the Feb 22 - Mar 21 window.
		{ID: "hol-3", CompanyID: "co-1", Date: "2024-03-25"},
		{ID: "hol-4", CompanyID: "co-1", Date: "2024-02-21"},
	}}
	svc := NewHolidayService(nil, repo)

	holidays, err := svc.ListByCycle(ctx, "2024-03-15", "co-1")
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2024-02-23", holidays[0].Date)
	assert.Equal(t, "2024-03-08", holidays[1].Date)

	// Any date of the anchor month selects the same window, including
	// the 1st, which sits inside the cycle but ahead of its first day.
	holidays, err = svc.ListByCycle(ctx, "2024-03-01", "co-1")
	require.NoError(t, err)
	assert.Len(t, holidays, 2)
}
