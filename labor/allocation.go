package labor

import "github.com/shopspring/decimal"

// =============================================================================
// PERIOD ALLOCATION - Pro-rata amortization of fixed pay across days
// =============================================================================
// Fixed pay (salary, contractor retainers) is spread evenly over an assumed
// average day count for its pay cycle. The tables are immutable configuration;
// no mutable global state, safe under concurrent use.

var daysPerPayPeriod = map[PayPeriodType]decimal.Decimal{
	PayWeekly:      decimal.NewFromInt(7),
	PayBiWeekly:    decimal.NewFromInt(14),
	PaySemiMonthly: decimal.NewFromFloat(15.22), // 365.25 / 24
	PayMonthly:     decimal.NewFromFloat(30.44), // 365.25 / 12
}

var daysPerContractorInterval = map[ContractorInterval]decimal.Decimal{
	IntervalWeekly:   decimal.NewFromInt(7),
	IntervalBiWeekly: decimal.NewFromInt(14),
	IntervalMonthly:  decimal.NewFromFloat(30.44),
}

// DailySalaryAllocation returns the per-day share of a salary in cents,
// rounded to the nearest cent. Unknown pay period types allocate zero.
func DailySalaryAllocation(amountCents int64, payPeriod PayPeriodType) decimal.Decimal {
	days, ok := daysPerPayPeriod[payPeriod]
	if !ok || amountCents == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(amountCents).Div(days).Round(0)
}

// DailyContractorAllocation returns the per-day share of a contractor
// payment in cents. Per-job contractors are paid per completed job, never
// amortized daily, and contribute zero to period cost.
func DailyContractorAllocation(amountCents int64, interval ContractorInterval) decimal.Decimal {
	if interval == IntervalPerJob {
		return decimal.Zero
	}
	days, ok := daysPerContractorInterval[interval]
	if !ok || amountCents == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(amountCents).Div(days).Round(0)
}
