package labor

import "github.com/shopspring/decimal"

// =============================================================================
// RESULT TYPES - Ephemeral, constructed fresh per call, owned by the caller
// =============================================================================
// All cost fields here are decimal DOLLARS. Input rates and amounts are
// integer cents; DollarsFromCents is the only crossing point.

// DailyLaborCost is the cost of one calendar day, split by pay model.
type DailyLaborCost struct {
	Date           Day
	HourlyCost     decimal.Decimal
	SalaryCost     decimal.Decimal
	ContractorCost decimal.Decimal
	DailyRateCost  decimal.Decimal
	TotalCost      decimal.Decimal
	HoursWorked    float64
}

// HourlySummary aggregates the hourly bucket over a period.
type HourlySummary struct {
	Cost  decimal.Decimal
	Hours float64
}

// FixedSummary aggregates a fixed-pay bucket (salary, contractor, daily-rate)
// over a period. Employees reflects each employee's CURRENT compensation
// type, a documented simplification that coexists with historically-accurate
// cost math. DaysScheduled counts the employee-days that carried cost.
type FixedSummary struct {
	Cost          decimal.Decimal
	Employees     int
	DaysScheduled int
}

// LaborCostBreakdown is the period aggregate across the four pay models.
type LaborCostBreakdown struct {
	Hourly     HourlySummary
	Salary     FixedSummary
	Contractor FixedSummary
	DailyRate  FixedSummary
	Total      decimal.Decimal
}

// LaborCostResult pairs the period breakdown with its per-day detail.
type LaborCostResult struct {
	Breakdown  LaborCostBreakdown
	DailyCosts []DailyLaborCost
}

// newDailyCosts initializes a zero-valued DailyLaborCost for every calendar
// date in the range, keyed for in-place accumulation.
func newDailyCosts(dates []Day) map[Day]*DailyLaborCost {
	costs := make(map[Day]*DailyLaborCost, len(dates))
	for _, d := range dates {
		costs[d] = &DailyLaborCost{Date: d}
	}
	return costs
}

// finalize totals each day, orders days ascending, and sums the period
// breakdown from the daily buckets so the two views always reconcile.
func finalize(dates []Day, daily map[Day]*DailyLaborCost, breakdown LaborCostBreakdown) LaborCostResult {
	out := make([]DailyLaborCost, 0, len(dates))
	for _, d := range dates {
		dc := daily[d]
		dc.TotalCost = dc.HourlyCost.Add(dc.SalaryCost).Add(dc.ContractorCost).Add(dc.DailyRateCost)

		breakdown.Hourly.Cost = breakdown.Hourly.Cost.Add(dc.HourlyCost)
		breakdown.Hourly.Hours += dc.HoursWorked
		breakdown.Salary.Cost = breakdown.Salary.Cost.Add(dc.SalaryCost)
		breakdown.Contractor.Cost = breakdown.Contractor.Cost.Add(dc.ContractorCost)
		breakdown.DailyRate.Cost = breakdown.DailyRate.Cost.Add(dc.DailyRateCost)
		breakdown.Total = breakdown.Total.Add(dc.TotalCost)

		out = append(out, *dc)
	}
	return LaborCostResult{Breakdown: breakdown, DailyCosts: out}
}

// countCurrentTypes fills the per-type employee counts from each employee's
// current compensation type.
func countCurrentTypes(employees []Employee, breakdown *LaborCostBreakdown) {
	for i := range employees {
		switch employees[i].CompensationType {
		case CompSalary:
			breakdown.Salary.Employees++
		case CompContractor:
			breakdown.Contractor.Employees++
		case CompDailyRate:
			breakdown.DailyRate.Employees++
		}
	}
}
