package labor_test

import (
	"testing"
	"time"

	"github.com/platewise/labor-engine/labor"
)

// =============================================================================
// SCHEDULED LABOR COST TESTS - Shift-based projection
// =============================================================================

func shiftAt(empID string, year int, month time.Month, d, startHour, endHour, breakMin int) labor.Shift {
	return labor.Shift{
		EmployeeID:   empID,
		StartTime:    time.Date(year, month, d, startHour, 0, 0, 0, time.UTC),
		EndTime:      time.Date(year, month, d, endHour, 0, 0, 0, time.UTC),
		BreakMinutes: breakMin,
	}
}

func TestScheduled_HourlyShift_BreakMinutesSubtracted(t *testing.T) {
	// GIVEN: A $20/hr employee scheduled 09:00-17:00 with a 30-minute break
	// THEN: 7.5 paid hours project to 150.00

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		Shifts:    []labor.Shift{shiftAt("emp-1", 2024, time.June, 3, 9, 17, 30)},
		StartDate: day(2024, time.June, 3),
		EndDate:   day(2024, time.June, 3),
	})

	if result.Breakdown.Hourly.Hours != 7.5 {
		t.Errorf("paid hours: want 7.5, got %v", result.Breakdown.Hourly.Hours)
	}
	if !result.Breakdown.Total.Equal(mustDollars("150")) {
		t.Errorf("total: want 150.00, got %s", result.Breakdown.Total)
	}
}

func TestScheduled_BreakLongerThanShift_ClampsToZero(t *testing.T) {
	// A degenerate schedule row must not produce negative hours.

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		Shifts:    []labor.Shift{shiftAt("emp-1", 2024, time.June, 3, 9, 10, 90)},
		StartDate: day(2024, time.June, 3),
		EndDate:   day(2024, time.June, 3),
	})

	if result.Breakdown.Hourly.Hours != 0 {
		t.Errorf("want 0 hours, got %v", result.Breakdown.Hourly.Hours)
	}
	if !result.Breakdown.Total.IsZero() {
		t.Errorf("want zero total, got %s", result.Breakdown.Total)
	}
}

func TestScheduled_DailyRate_OneChargePerDay(t *testing.T) {
	// GIVEN: A daily-rate employee with TWO shifts on the same day
	// THEN: The flat rate is charged once, not twice

	emp := labor.Employee{
		ID:               "emp-1",
		Status:           labor.StatusActive,
		CompensationType: labor.CompDailyRate,
		DailyRateCents:   15000,
	}

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{emp},
		Shifts: []labor.Shift{
			shiftAt("emp-1", 2024, time.June, 3, 8, 12, 0),
			shiftAt("emp-1", 2024, time.June, 3, 17, 22, 0),
		},
		StartDate: day(2024, time.June, 3),
		EndDate:   day(2024, time.June, 3),
	})

	if !result.Breakdown.Total.Equal(mustDollars("150")) {
		t.Errorf("split shift must charge one daily rate, got %s", result.Breakdown.Total)
	}
	if result.Breakdown.DailyRate.DaysScheduled != 1 {
		t.Errorf("want 1 scheduled day, got %d", result.Breakdown.DailyRate.DaysScheduled)
	}
}

func TestScheduled_InactiveEmployee_FullyExcluded(t *testing.T) {
	// GIVEN: An inactive salaried employee with scheduled shifts
	// THEN: Neither shift cost nor salary amortization is projected

	emp := labor.Employee{
		ID:                "emp-1",
		Status:            labor.StatusInactive,
		CompensationType:  labor.CompSalary,
		SalaryAmountCents: 140000,
		PayPeriodType:     labor.PayBiWeekly,
	}

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{emp},
		Shifts:    []labor.Shift{shiftAt("emp-1", 2024, time.June, 3, 9, 17, 0)},
		StartDate: day(2024, time.June, 3),
		EndDate:   day(2024, time.June, 9),
	})

	if !result.Breakdown.Total.IsZero() {
		t.Errorf("inactive employee must project zero, got %s", result.Breakdown.Total)
	}
	if result.Breakdown.Salary.Employees != 0 {
		t.Errorf("inactive employee must not be counted, got %d", result.Breakdown.Salary.Employees)
	}
}

func TestScheduled_SalaryProjectsWithoutShifts(t *testing.T) {
	// Fixed pay accrues for active salaried staff even with no shifts.
	// $1400 bi-weekly = $100/day over a 7-day window.

	emp := labor.Employee{
		ID:                "emp-1",
		Status:            labor.StatusActive,
		CompensationType:  labor.CompSalary,
		SalaryAmountCents: 140000,
		PayPeriodType:     labor.PayBiWeekly,
	}

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{emp},
		StartDate: day(2024, time.June, 3),
		EndDate:   day(2024, time.June, 9),
	})

	if !result.Breakdown.Salary.Cost.Equal(mustDollars("700")) {
		t.Errorf("salary: want 700.00, got %s", result.Breakdown.Salary.Cost)
	}
	for _, dc := range result.DailyCosts {
		if !dc.SalaryCost.Equal(mustDollars("100")) {
			t.Errorf("%s: want 100.00/day, got %s", dc.Date, dc.SalaryCost)
		}
	}
}

func TestScheduled_ShiftOutsideRange_Ignored(t *testing.T) {
	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		Shifts:    []labor.Shift{shiftAt("emp-1", 2024, time.June, 10, 9, 17, 0)},
		StartDate: day(2024, time.June, 3),
		EndDate:   day(2024, time.June, 9),
	})

	if !result.Breakdown.Total.IsZero() {
		t.Errorf("out-of-range shift must cost nothing, got %s", result.Breakdown.Total)
	}
}

func TestScheduled_ShiftUsesShiftDaySnapshot(t *testing.T) {
	// A raise effective June 5 applies to shifts on or after June 5 only.

	emp := hourlyEmployee("emp-1", 2000)
	emp.CompensationHistory = []labor.CompensationEntry{
		{EffectiveDate: day(2024, time.January, 1), CompensationType: labor.CompHourly, AmountCents: 2000},
		{EffectiveDate: day(2024, time.June, 5), CompensationType: labor.CompHourly, AmountCents: 2400},
	}

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: []labor.Employee{emp},
		Shifts: []labor.Shift{
			shiftAt("emp-1", 2024, time.June, 4, 9, 17, 0), // 8h at $20
			shiftAt("emp-1", 2024, time.June, 5, 9, 17, 0), // 8h at $24
		},
		StartDate: day(2024, time.June, 4),
		EndDate:   day(2024, time.June, 5),
	})

	if !result.DailyCosts[0].HourlyCost.Equal(mustDollars("160")) {
		t.Errorf("pre-raise day: want 160.00, got %s", result.DailyCosts[0].HourlyCost)
	}
	if !result.DailyCosts[1].HourlyCost.Equal(mustDollars("192")) {
		t.Errorf("post-raise day: want 192.00, got %s", result.DailyCosts[1].HourlyCost)
	}
}
