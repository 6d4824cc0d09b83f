/*
actual.go - Historical labor cost from time punches

PURPOSE:
  The punch-based orchestrator: raw punches -> dedup -> work periods ->
  per-employee-day hour map -> joined with per-day compensation snapshots
  and fixed-pay amortization -> daily costs plus a period breakdown.

PIPELINE:
  1. Zero-valued DailyLaborCost for every date in [StartDate, EndDate].
  2. Per employee: DeduplicatePunches, ParseWorkPeriods, keep non-break
     periods. Hours accrue to the period's START day; the employee is
     marked active on every day the period spans (a midnight-crossing
     period activates both days).
  3. Per date x active employee: resolve THAT day's snapshot. Hourly pay
     costs rate x hours, rounded to cents. Daily-rate pay costs the flat
     amount once per employee per day, hours notwithstanding.
  4. Fixed pay (salary, contractor) is independent of punches: walk every
     day of the range per employee, skip days outside the employment
     window, and accumulate that day's allocation only when that day's
     resolved type matches. Checking the type per day is what keeps
     mid-period compensation changes from double-counting. The accumulated
     total is then spread evenly over the REQUESTED range.
  5. Daily buckets sum into the breakdown, so the two views reconcile.

EMPLOYEE COUNTS:
  Per-type employee counts in the breakdown reflect each employee's
  current compensation type, a documented simplification.
*/
package labor

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ActualLaborCostInput carries fully-materialized records; nothing streams.
type ActualLaborCostInput struct {
	Employees   []Employee
	TimePunches []TimePunch
	StartDate   Day
	EndDate     Day
}

// CalculateActualLaborCost computes the historical labor cost for the range.
// Pure: no I/O, no clock reads, and safe to call concurrently.
func CalculateActualLaborCost(input ActualLaborCostInput) LaborCostResult {
	dateRange := DateRange{Start: input.StartDate, End: input.EndDate}
	dates := dateRange.Days()
	if len(dates) == 0 {
		return LaborCostResult{DailyCosts: []DailyLaborCost{}}
	}

	daily := newDailyCosts(dates)
	var breakdown LaborCostBreakdown
	countCurrentTypes(input.Employees, &breakdown)

	byID := make(map[string]*Employee, len(input.Employees))
	for i := range input.Employees {
		byID[input.Employees[i].ID] = &input.Employees[i]
	}

	hoursByDay, activeByDay := reconstructHours(input.TimePunches, byID, dateRange)

	// Punch-driven cost: hourly and daily-rate.
	for _, date := range dates {
		active := activeByDay[date]
		for i := range input.Employees {
			emp := &input.Employees[i]
			if !active[emp.ID] {
				continue
			}
			snap := ResolveCompensation(emp, date)
			dc := daily[date]
			switch snap.Type {
			case CompHourly:
				hours := hoursByDay[emp.ID][date]
				cost := DollarsFromCents(snap.HourlyRateCents).
					Mul(decimal.NewFromFloat(hours)).Round(2)
				dc.HourlyCost = dc.HourlyCost.Add(cost)
				dc.HoursWorked += hours
			case CompDailyRate:
				dc.DailyRateCost = dc.DailyRateCost.Add(DollarsFromCents(snap.DailyRateCents))
				breakdown.DailyRate.DaysScheduled++
			}
		}
	}

	amortizeFixedPay(input.Employees, dates, daily, &breakdown)

	return finalize(dates, daily, breakdown)
}

// reconstructHours turns the punch stream into per-employee-day hours and the
// per-day active-employee sets. Punches for unknown employees are dropped.
func reconstructHours(punches []TimePunch, byID map[string]*Employee, dateRange DateRange) (map[string]map[Day]float64, map[Day]map[string]bool) {
	grouped := make(map[string][]TimePunch)
	for _, p := range punches {
		if _, ok := byID[p.EmployeeID]; !ok {
			continue
		}
		grouped[p.EmployeeID] = append(grouped[p.EmployeeID], p)
	}

	hoursByDay := make(map[string]map[Day]float64)
	activeByDay := make(map[Day]map[string]bool)

	for empID, empPunches := range grouped {
		sort.SliceStable(empPunches, func(i, j int) bool {
			return empPunches[i].PunchTime.Before(empPunches[j].PunchTime)
		})

		periods := ParseWorkPeriods(DeduplicatePunches(empPunches))
		for _, period := range periods {
			if period.IsBreak {
				continue
			}

			startDay := DayOf(period.Start)
			if hoursByDay[empID] == nil {
				hoursByDay[empID] = make(map[Day]float64)
			}
			hoursByDay[empID][startDay] += period.Hours

			// A period crossing midnight activates every day it touches,
			// though its hours attribute only to the start day.
			for d := startDay; d.BeforeOrEqual(DayOf(period.End)); d = d.AddDays(1) {
				if !dateRange.Contains(d) {
					continue
				}
				if activeByDay[d] == nil {
					activeByDay[d] = make(map[string]bool)
				}
				activeByDay[d][empID] = true
			}
		}
	}

	return hoursByDay, activeByDay
}

// amortizeFixedPay spreads salary and non-per-job contractor pay over the
// requested range, resolving the compensation type day by day.
func amortizeFixedPay(employees []Employee, dates []Day, daily map[Day]*DailyLaborCost, breakdown *LaborCostBreakdown) {
	rangeDays := decimal.NewFromInt(int64(len(dates)))

	for i := range employees {
		emp := &employees[i]

		salaryCents := decimal.Zero
		contractorCents := decimal.Zero
		for _, date := range dates {
			if !emp.EmployedOn(date) {
				continue
			}
			snap := ResolveCompensation(emp, date)
			switch snap.Type {
			case CompSalary:
				salaryCents = salaryCents.Add(DailySalaryAllocation(snap.SalaryAmountCents, snap.PayPeriodType))
				breakdown.Salary.DaysScheduled++
			case CompContractor:
				if snap.ContractorInterval == IntervalPerJob {
					continue
				}
				contractorCents = contractorCents.Add(DailyContractorAllocation(snap.ContractorPaymentCents, snap.ContractorInterval))
				breakdown.Contractor.DaysScheduled++
			}
		}

		// The period total spreads over every day in the requested range,
		// not just the employee's matching days.
		if salaryCents.IsPositive() {
			perDay := dollarsFromDecimalCents(salaryCents.Div(rangeDays)).Round(2)
			for _, date := range dates {
				daily[date].SalaryCost = daily[date].SalaryCost.Add(perDay)
			}
		}
		if contractorCents.IsPositive() {
			perDay := dollarsFromDecimalCents(contractorCents.Div(rangeDays)).Round(2)
			for _, date := range dates {
				daily[date].ContractorCost = daily[date].ContractorCost.Add(perDay)
			}
		}
	}
}
