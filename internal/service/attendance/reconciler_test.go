package attendance

import (
	"testing"

	"github.com/hrmflow/hrm-backend-go/internal/domain/attendance"
	"github.com/hrmflow/hrm-backend-go/internal/domain/holiday"
	"github.com/hrmflow/hrm-backend-go/internal/domain/leave"
)

func strPtr(s string) *string { return &s }

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name           string
		actual         *string
		scheduled      string
		kind           BoundaryKind
		wantMinutes    int
		wantApplicable bool
	}{
		{
			name:           "late arrival",
			actual:         strPtr("09:10"),
			scheduled:      "09:00",
			kind:           BoundaryArrival,
			wantMinutes:    10,
			wantApplicable: true,
		},
		{
			name:           "early arrival is negative",
			actual:         strPtr("08:50"),
			scheduled:      "09:00",
			kind:           BoundaryArrival,
			wantMinutes:    -10,
			wantApplicable: true,
		},
		{
			name:           "exactly on time is zero and applicable",
			actual:         strPtr("09:00"),
			scheduled:      "09:00",
			kind:           BoundaryArrival,
			wantMinutes:    0,
			wantApplicable: true,
		},
		{
			name:           "overtime departure",
			actual:         strPtr("17:30"),
			scheduled:      "17:00",
			kind:           BoundaryDeparture,
			wantMinutes:    30,
			wantApplicable: true,
		},
		{
			name:           "early departure is negative",
			actual:         strPtr("16:45"),
			scheduled:      "17:00",
			kind:           BoundaryDeparture,
			wantMinutes:    -15,
			wantApplicable: true,
		},
		{
			name:           "missing punch is not applicable",
			actual:         nil,
			scheduled:      "17:00",
			kind:           BoundaryDeparture,
			wantApplicable: false,
		},
		{
			name:           "empty punch is not applicable",
			actual:         strPtr(""),
			scheduled:      "17:00",
			kind:           BoundaryDeparture,
			wantApplicable: false,
		},
		{
			name:           "malformed punch is not applicable",
			actual:         strPtr("9 o'clock"),
			scheduled:      "09:00",
			kind:           BoundaryArrival,
			wantApplicable: false,
		},
		{
			name:           "malformed schedule is not applicable",
			actual:         strPtr("09:10"),
			scheduled:      "",
			kind:           BoundaryArrival,
			wantApplicable: false,
		},
		{
			name:           "delta crosses midday",
			actual:         strPtr("13:05"),
			scheduled:      "09:00",
			kind:           BoundaryArrival,
			wantMinutes:    245,
			wantApplicable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, applicable := ComputeDelta(tt.actual, tt.scheduled, tt.kind)
			if applicable != tt.wantApplicable {
				t.Fatalf("applicable = %v, want %v", applicable, tt.wantApplicable)
			}
			if applicable && minutes != tt.wantMinutes {
				t.Errorf("minutes = %d, want %d", minutes, tt.wantMinutes)
			}
		})
	}
}

func TestDayStatusCode(t *testing.T) {
	tests := []struct {
		status DayStatus
		want   string
	}{
		{StatusPresent, "P"},
		{StatusAbsent, "A"},
		{StatusOffday, "O"},
		{StatusPaidLeave, "L"},
		{StatusOffdayAttendance, "OA"},
	}

	for _, tt := range tests {
		if got := tt.status.Code(); got != tt.want {
			t.Errorf("Code(%s) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestClassifyDay(t *testing.T) {
	const empID = "emp-1"
	const otherID = "emp-2"

	attendances := []attendance.Attendance{
		{EmployeeID: empID, Date: "2024-03-04", ArrivalTime: "09:05"},
		{EmployeeID: empID, Date: "2024-03-08", ArrivalTime: "10:00"},
		{EmployeeID: otherID, Date: "2024-03-05", ArrivalTime: "09:00"},
		{EmployeeID: empID, Date: "not-a-date", ArrivalTime: "09:00"},
	}
	holidays := []holiday.Holiday{
		{Date: "2024-03-08"},
		{Date: "2024-03-11"},
		{Date: "garbage"},
	}
	leaves := []leave.Leave{
		{
			EmployeeID: empID,
			FromDate:   "2024-03-11",
			ToDate:     "2024-03-13",
			Type:       leave.TypePaid,
			Status:     leave.StatusApproved,
		},
		{
			EmployeeID: empID,
			FromDate:   "2024-03-18",
			ToDate:     "2024-03-18",
			Type:       leave.TypeUnpaid,
			Status:     leave.StatusApproved,
		},
		{
			EmployeeID: empID,
			FromDate:   "2024-03-19",
			ToDate:     "2024-03-19",
			Type:       leave.TypePaid,
			Status:     leave.StatusPending,
		},
	}

	tests := []struct {
		name string
		date string
		want DayStatus
	}{
		{name: "attendance record means present", date: "2024-03-04", want: StatusPresent},
		{name: "attendance on a holiday wins over offday", date: "2024-03-08", want: StatusOffdayAttendance},
		{name: "holiday inside a leave window stays offday", date: "2024-03-11", want: StatusOffday},
		{name: "approved paid leave covers the date", date: "2024-03-12", want: StatusPaidLeave},
		{name: "leave range end is inclusive", date: "2024-03-13", want: StatusPaidLeave},
		{name: "day after leave ends is absent", date: "2024-03-14", want: StatusAbsent},
		{name: "another employee's attendance does not count", date: "2024-03-05", want: StatusAbsent},
		{name: "unpaid leave is absent", date: "2024-03-18", want: StatusAbsent},
		{name: "pending leave is absent", date: "2024-03-19", want: StatusAbsent},
		{name: "no records at all is absent", date: "2024-03-20", want: StatusAbsent},
		{name: "malformed cell date is absent", date: "bogus", want: StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDay(empID, tt.date, attendances, holidays, leaves)
			if got != tt.want {
				t.Errorf("ClassifyDay(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestClassifyDayEmptyInputs(t *testing.T) {
	if got := ClassifyDay("emp-1", "2024-03-04", nil, nil, nil); got != StatusAbsent {
		t.Errorf("ClassifyDay with no records = %s, want %s", got, StatusAbsent)
	}
}
