/*
scheduled.go - Projected labor cost from planned shifts

PURPOSE:
  The forward-looking twin of actual.go. Consumes explicit shift records
  instead of reconstructing intervals from punches, so there is no parsing
  or deduplication. Only ACTIVE employees are projected; inactive and
  terminated staff have no future shifts worth costing.

DIFFERENCES FROM actual.go:
  - Hourly cost = rate x max(shift minutes - break minutes, 0) / 60.
  - A daily-rate employee with several shifts on one day still costs
    exactly one daily rate (tracked via a per-day counted-employee set).
  - Salary/contractor amortization is the identical day-by-day walk,
    restricted to active employees.
*/
package labor

import "github.com/shopspring/decimal"

// ScheduledLaborCostInput carries planned shifts for a projection window.
type ScheduledLaborCostInput struct {
	Employees []Employee
	Shifts    []Shift
	StartDate Day
	EndDate   Day
}

// CalculateScheduledLaborCost projects labor cost for planned shifts.
// Pure and side-effect free, like the historical calculator.
func CalculateScheduledLaborCost(input ScheduledLaborCostInput) LaborCostResult {
	dateRange := DateRange{Start: input.StartDate, End: input.EndDate}
	dates := dateRange.Days()
	if len(dates) == 0 {
		return LaborCostResult{DailyCosts: []DailyLaborCost{}}
	}

	daily := newDailyCosts(dates)

	active := make([]Employee, 0, len(input.Employees))
	byID := make(map[string]*Employee, len(input.Employees))
	for i := range input.Employees {
		if !input.Employees[i].IsActive() {
			continue
		}
		active = append(active, input.Employees[i])
		byID[input.Employees[i].ID] = &input.Employees[i]
	}

	var breakdown LaborCostBreakdown
	countCurrentTypes(active, &breakdown)

	// Daily-rate employees count at most once per day, shifts notwithstanding.
	countedDailyRate := make(map[Day]map[string]bool)

	for _, shift := range input.Shifts {
		emp, ok := byID[shift.EmployeeID]
		if !ok {
			continue
		}
		day := DayOf(shift.StartTime)
		if !dateRange.Contains(day) {
			continue
		}

		snap := ResolveCompensation(emp, day)
		dc := daily[day]
		switch snap.Type {
		case CompHourly:
			minutes := shift.EndTime.Sub(shift.StartTime).Minutes() - float64(shift.BreakMinutes)
			if minutes < 0 {
				minutes = 0
			}
			hours := minutes / 60
			cost := DollarsFromCents(snap.HourlyRateCents).
				Mul(decimal.NewFromFloat(hours)).Round(2)
			dc.HourlyCost = dc.HourlyCost.Add(cost)
			dc.HoursWorked += hours
		case CompDailyRate:
			if countedDailyRate[day][emp.ID] {
				continue
			}
			if countedDailyRate[day] == nil {
				countedDailyRate[day] = make(map[string]bool)
			}
			countedDailyRate[day][emp.ID] = true
			dc.DailyRateCost = dc.DailyRateCost.Add(DollarsFromCents(snap.DailyRateCents))
			breakdown.DailyRate.DaysScheduled++
		}
	}

	amortizeFixedPay(active, dates, daily, &breakdown)

	return finalize(dates, daily, breakdown)
}
