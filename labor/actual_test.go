package labor_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/platewise/labor-engine/labor"
)

// =============================================================================
// ACTUAL LABOR COST TESTS - Punch-based historical calculation
// =============================================================================

func hourlyEmployee(id string, rateCents int64) labor.Employee {
	return labor.Employee{
		ID:               id,
		Name:             "Test " + id,
		Status:           labor.StatusActive,
		CompensationType: labor.CompHourly,
		HourlyRateCents:  rateCents,
	}
}

func day(year int, month time.Month, d int) labor.Day {
	return labor.NewDay(year, month, d)
}

func mustDollars(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestActual_HourlyEmployee_SingleShift(t *testing.T) {
	// GIVEN: A $20/hr employee who worked 09:00-17:00 on Jan 1
	// WHEN: Calculating for Jan 1 only
	// THEN: hourly cost 160.00, hours 8, total 160.00

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		TimePunches: []labor.TimePunch{
			punchAt("emp-1", labor.PunchClockIn, 2024, time.January, 1, 9, 0),
			punchAt("emp-1", labor.PunchClockOut, 2024, time.January, 1, 17, 0),
		},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 1),
	})

	if len(result.DailyCosts) != 1 {
		t.Fatalf("expected 1 daily cost, got %d", len(result.DailyCosts))
	}
	dc := result.DailyCosts[0]
	if !dc.HourlyCost.Equal(mustDollars("160")) {
		t.Errorf("hourly cost: want 160.00, got %s", dc.HourlyCost)
	}
	if dc.HoursWorked != 8 {
		t.Errorf("hours worked: want 8, got %v", dc.HoursWorked)
	}
	if !result.Breakdown.Total.Equal(mustDollars("160")) {
		t.Errorf("breakdown total: want 160.00, got %s", result.Breakdown.Total)
	}
	if result.Breakdown.Hourly.Hours != 8 {
		t.Errorf("breakdown hours: want 8, got %v", result.Breakdown.Hourly.Hours)
	}
}

func TestActual_BreaksNeverContributeCost(t *testing.T) {
	// GIVEN: 09:00-17:00 with a 30-minute break
	// THEN: 7.5 paid hours, not 8

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		TimePunches: []labor.TimePunch{
			punchAt("emp-1", labor.PunchClockIn, 2024, time.January, 1, 9, 0),
			punchAt("emp-1", labor.PunchBreakStart, 2024, time.January, 1, 12, 0),
			punchAt("emp-1", labor.PunchBreakEnd, 2024, time.January, 1, 12, 30),
			punchAt("emp-1", labor.PunchClockOut, 2024, time.January, 1, 17, 0),
		},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 1),
	})

	if result.Breakdown.Hourly.Hours != 7.5 {
		t.Errorf("paid hours: want 7.5, got %v", result.Breakdown.Hourly.Hours)
	}
	if !result.Breakdown.Total.Equal(mustDollars("150")) {
		t.Errorf("total: want 150.00, got %s", result.Breakdown.Total)
	}
}

func TestActual_PerJobContractor_ZeroCost(t *testing.T) {
	// GIVEN: A per-job contractor, even one with punches in the range
	// THEN: Zero cost everywhere; per-job pay never enters period cost

	emp := labor.Employee{
		ID:                     "emp-1",
		Status:                 labor.StatusActive,
		CompensationType:       labor.CompContractor,
		ContractorPaymentCents: 500000,
		ContractorInterval:     labor.IntervalPerJob,
	}

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{emp},
		TimePunches: []labor.TimePunch{
			punchAt("emp-1", labor.PunchClockIn, 2024, time.January, 1, 9, 0),
			punchAt("emp-1", labor.PunchClockOut, 2024, time.January, 1, 17, 0),
		},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 7),
	})

	if !result.Breakdown.Total.IsZero() {
		t.Errorf("per-job contractor must cost zero, got %s", result.Breakdown.Total)
	}
	if result.Breakdown.Contractor.Employees != 1 {
		t.Errorf("employee count should still reflect the contractor, got %d",
			result.Breakdown.Contractor.Employees)
	}
}

func TestActual_MidPeriodSwitch_HourlyToSalary(t *testing.T) {
	// GIVEN: An employee hourly at $20/hr through January, salaried at
	//        $1400 bi-weekly from Feb 1, with 2-hour shifts Jan 29-31
	// WHEN: Calculating Jan 29 - Feb 3 (6 days)
	// THEN: Hourly pay covers only the January days ($120); the salary
	//       accrues on the February days (3 x $100/day = $300) and spreads
	//       evenly over all 6 requested days ($50/day). No double counting.

	emp := labor.Employee{
		ID:                "emp-1",
		Status:            labor.StatusActive,
		CompensationType:  labor.CompSalary,
		SalaryAmountCents: 140000,
		PayPeriodType:     labor.PayBiWeekly,
		CompensationHistory: []labor.CompensationEntry{
			{EffectiveDate: day(2024, time.January, 1), CompensationType: labor.CompHourly, AmountCents: 2000},
			{EffectiveDate: day(2024, time.February, 1), CompensationType: labor.CompSalary, AmountCents: 140000, PayPeriodType: labor.PayBiWeekly},
		},
	}

	var punches []labor.TimePunch
	for _, d := range []int{29, 30, 31} {
		punches = append(punches,
			punchAt("emp-1", labor.PunchClockIn, 2024, time.January, d, 9, 0),
			punchAt("emp-1", labor.PunchClockOut, 2024, time.January, d, 11, 0),
		)
	}

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees:   []labor.Employee{emp},
		TimePunches: punches,
		StartDate:   day(2024, time.January, 29),
		EndDate:     day(2024, time.February, 3),
	})

	if !result.Breakdown.Hourly.Cost.Equal(mustDollars("120")) {
		t.Errorf("hourly: want 120.00, got %s", result.Breakdown.Hourly.Cost)
	}
	if !result.Breakdown.Salary.Cost.Equal(mustDollars("300")) {
		t.Errorf("salary: want 300.00, got %s", result.Breakdown.Salary.Cost)
	}
	if !result.Breakdown.Total.Equal(mustDollars("420")) {
		t.Errorf("total: want 420.00, got %s", result.Breakdown.Total)
	}
	if result.Breakdown.Salary.DaysScheduled != 3 {
		t.Errorf("salary accrued on 3 days, got %d", result.Breakdown.Salary.DaysScheduled)
	}

	// Amortization is flat: every requested day carries $50 of salary.
	for _, dc := range result.DailyCosts {
		if !dc.SalaryCost.Equal(mustDollars("50")) {
			t.Errorf("%s: want 50.00 salary/day, got %s", dc.Date, dc.SalaryCost)
		}
	}
}

func TestActual_MidnightCrossing_ActivatesBothDays(t *testing.T) {
	// GIVEN: A daily-rate employee working 22:00 Jan 1 - 02:00 Jan 2
	// THEN: The flat rate is charged on BOTH days the period touches

	emp := labor.Employee{
		ID:               "emp-1",
		Status:           labor.StatusActive,
		CompensationType: labor.CompDailyRate,
		DailyRateCents:   10000,
	}

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{emp},
		TimePunches: []labor.TimePunch{
			punchAt("emp-1", labor.PunchClockIn, 2024, time.January, 1, 22, 0),
			punchAt("emp-1", labor.PunchClockOut, 2024, time.January, 2, 2, 0),
		},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 2),
	})

	if len(result.DailyCosts) != 2 {
		t.Fatalf("expected 2 daily costs, got %d", len(result.DailyCosts))
	}
	for _, dc := range result.DailyCosts {
		if !dc.DailyRateCost.Equal(mustDollars("100")) {
			t.Errorf("%s: want 100.00 daily-rate, got %s", dc.Date, dc.DailyRateCost)
		}
	}
	if !result.Breakdown.Total.Equal(mustDollars("200")) {
		t.Errorf("total: want 200.00, got %s", result.Breakdown.Total)
	}
}

func TestActual_MidnightCrossing_HoursAttributeToStartDay(t *testing.T) {
	// Hours for a midnight-crossing period land on the START day only.

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		TimePunches: []labor.TimePunch{
			punchAt("emp-1", labor.PunchClockIn, 2024, time.January, 1, 22, 0),
			punchAt("emp-1", labor.PunchClockOut, 2024, time.January, 2, 2, 0),
		},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 2),
	})

	if result.DailyCosts[0].HoursWorked != 4 {
		t.Errorf("start day: want 4 hours, got %v", result.DailyCosts[0].HoursWorked)
	}
	if result.DailyCosts[1].HoursWorked != 0 {
		t.Errorf("second day: want 0 hours, got %v", result.DailyCosts[1].HoursWorked)
	}
	if !result.Breakdown.Total.Equal(mustDollars("80")) {
		t.Errorf("total: want 80.00, got %s", result.Breakdown.Total)
	}
}

func TestActual_SalaryRespectsEmploymentWindow(t *testing.T) {
	// GIVEN: A $700/week salaried employee terminated Jan 5
	// WHEN: Calculating Jan 1-10 (10 days)
	// THEN: Salary accrues for 5 employed days (5 x $100), spread over 10

	emp := labor.Employee{
		ID:                "emp-1",
		Status:            labor.StatusTerminated,
		CompensationType:  labor.CompSalary,
		SalaryAmountCents: 70000,
		PayPeriodType:     labor.PayWeekly,
		TerminationDate:   day(2024, time.January, 5),
	}

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{emp},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 10),
	})

	if !result.Breakdown.Salary.Cost.Equal(mustDollars("500")) {
		t.Errorf("salary: want 500.00, got %s", result.Breakdown.Salary.Cost)
	}
	if result.Breakdown.Salary.DaysScheduled != 5 {
		t.Errorf("want 5 accrual days, got %d", result.Breakdown.Salary.DaysScheduled)
	}
	for _, dc := range result.DailyCosts {
		if !dc.SalaryCost.Equal(mustDollars("50")) {
			t.Errorf("%s: want 50.00/day, got %s", dc.Date, dc.SalaryCost)
		}
	}
}

func TestActual_DailyTotalsReconcileWithBreakdown(t *testing.T) {
	// Invariant: the sum of daily totals equals the breakdown total, and each
	// day's total equals the sum of its four buckets.

	employees := []labor.Employee{
		hourlyEmployee("hourly-1", 2000),
		{
			ID: "salary-1", Status: labor.StatusActive,
			CompensationType: labor.CompSalary, SalaryAmountCents: 140000,
			PayPeriodType: labor.PayBiWeekly,
		},
		{
			ID: "contractor-1", Status: labor.StatusActive,
			CompensationType: labor.CompContractor, ContractorPaymentCents: 70000,
			ContractorInterval: labor.IntervalWeekly,
		},
		{
			ID: "daily-1", Status: labor.StatusActive,
			CompensationType: labor.CompDailyRate, DailyRateCents: 12500,
		},
	}

	punches := []labor.TimePunch{
		punchAt("hourly-1", labor.PunchClockIn, 2024, time.March, 4, 9, 0),
		punchAt("hourly-1", labor.PunchClockOut, 2024, time.March, 4, 17, 30),
		punchAt("hourly-1", labor.PunchClockIn, 2024, time.March, 6, 10, 0),
		punchAt("hourly-1", labor.PunchClockOut, 2024, time.March, 6, 14, 15),
		punchAt("daily-1", labor.PunchClockIn, 2024, time.March, 5, 8, 0),
		punchAt("daily-1", labor.PunchClockOut, 2024, time.March, 5, 16, 0),
	}

	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees:   employees,
		TimePunches: punches,
		StartDate:   day(2024, time.March, 4),
		EndDate:     day(2024, time.March, 10),
	})

	sum := decimal.Zero
	for _, dc := range result.DailyCosts {
		bucketSum := dc.HourlyCost.Add(dc.SalaryCost).Add(dc.ContractorCost).Add(dc.DailyRateCost)
		if !dc.TotalCost.Equal(bucketSum) {
			t.Errorf("%s: day total %s != bucket sum %s", dc.Date, dc.TotalCost, bucketSum)
		}
		sum = sum.Add(dc.TotalCost)
	}
	if !sum.Equal(result.Breakdown.Total) {
		t.Errorf("daily sum %s != breakdown total %s", sum, result.Breakdown.Total)
	}
}

func TestActual_EmptyRange_EmptyResult(t *testing.T) {
	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		StartDate: day(2024, time.January, 10),
		EndDate:   day(2024, time.January, 1),
	})

	if len(result.DailyCosts) != 0 {
		t.Errorf("inverted range: want 0 daily costs, got %d", len(result.DailyCosts))
	}
	if !result.Breakdown.Total.IsZero() {
		t.Errorf("inverted range: want zero total, got %s", result.Breakdown.Total)
	}
}

func TestActual_PunchesForUnknownEmployee_Ignored(t *testing.T) {
	result := labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees: []labor.Employee{hourlyEmployee("emp-1", 2000)},
		TimePunches: []labor.TimePunch{
			punchAt("ghost", labor.PunchClockIn, 2024, time.January, 1, 9, 0),
			punchAt("ghost", labor.PunchClockOut, 2024, time.January, 1, 17, 0),
		},
		StartDate: day(2024, time.January, 1),
		EndDate:   day(2024, time.January, 1),
	})

	if !result.Breakdown.Total.IsZero() {
		t.Errorf("unknown employee punches must cost nothing, got %s", result.Breakdown.Total)
	}
}
