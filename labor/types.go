/*
Package labor is the labor cost calculation engine.

PURPOSE:
  This package reconstructs actual worked time from raw time-clock punches,
  resolves time-varying (effective-dated) compensation terms, and produces
  daily and period labor-cost breakdowns across four pay models: hourly,
  salary, contractor, and daily-rate. It covers both historical periods
  (punch-based) and projected periods (shift-based).

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: pay configuration plus an effective-dated compensation history
  - TimePunch: a single clock event (clock in/out, break start/end)
  - Shift: a planned work window for forward projection
  - WorkPeriod: a reconstructed contiguous work or break interval
  - CompensationSnapshot: pay terms resolved for one calendar day

DESIGN PRINCIPLES:
  1. Purity: every calculator is a pure function of its inputs. No I/O,
     no wall-clock reads, no shared mutable state. Identical inputs always
     yield identical outputs, so calls may run concurrently without locking.
  2. Precision: money uses decimal.Decimal. Rates and amounts are stored in
     integer cents; all output costs are whole dollars. The conversion lives
     in exactly one function (DollarsFromCents).
  3. Point-in-time correctness: cost for a historical date uses only that
     date's resolved compensation snapshot, never today's record.
  4. Tolerance: malformed or unpaired punches are dropped, never raised as
     errors. The engine degrades to zero cost rather than failing.

SEE ALSO:
  - dedup.go: collapses double-tap punch artifacts
  - parser.go: punch stream -> work/break intervals
  - compensation.go: effective-dated pay term resolution
  - allocation.go: pro-rata amortization of fixed pay
  - actual.go, scheduled.go: the two calculators
*/
package labor

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusInactive   EmployeeStatus = "inactive"
	StatusTerminated EmployeeStatus = "terminated"
)

type CompensationType string

const (
	CompHourly     CompensationType = "hourly"
	CompSalary     CompensationType = "salary"
	CompContractor CompensationType = "contractor"
	CompDailyRate  CompensationType = "daily_rate"
)

// PayPeriodType is the salary pay cycle used for daily amortization.
type PayPeriodType string

const (
	PayWeekly      PayPeriodType = "weekly"
	PayBiWeekly    PayPeriodType = "bi-weekly"
	PaySemiMonthly PayPeriodType = "semi-monthly"
	PayMonthly     PayPeriodType = "monthly"
)

// ContractorInterval is the contractor payment cycle.
// IntervalPerJob contractors are never amortized into daily cost.
type ContractorInterval string

const (
	IntervalWeekly   ContractorInterval = "weekly"
	IntervalBiWeekly ContractorInterval = "bi-weekly"
	IntervalMonthly  ContractorInterval = "monthly"
	IntervalPerJob   ContractorInterval = "per-job"
)

// CompensationEntry is one effective-dated change in an employee's pay terms.
// Entries are kept ordered by EffectiveDate ascending; resolution picks the
// entry with the greatest EffectiveDate <= target day.
type CompensationEntry struct {
	EffectiveDate    Day
	CompensationType CompensationType
	AmountCents      int64
	PayPeriodType    PayPeriodType // only meaningful for salary entries
}

// Employee is a plain in-memory record. All rate and amount fields are in
// integer cents. The surrounding orchestration layer owns validation.
type Employee struct {
	ID     string
	Name   string
	Status EmployeeStatus

	CompensationType        CompensationType
	HourlyRateCents         int64
	SalaryAmountCents       int64
	PayPeriodType           PayPeriodType
	ContractorPaymentCents  int64
	ContractorInterval      ContractorInterval
	DailyRateCents          int64

	HireDate        Day
	TerminationDate Day // zero value = still employed

	CompensationHistory []CompensationEntry
}

// IsActive reports whether the employee is currently active.
func (e *Employee) IsActive() bool { return e.Status == StatusActive }

// EmployedOn reports whether the employee was employed on the given day,
// based on hire and termination dates.
func (e *Employee) EmployedOn(day Day) bool {
	if !e.HireDate.IsZero() && day.Before(e.HireDate) {
		return false
	}
	if !e.TerminationDate.IsZero() && day.After(e.TerminationDate) {
		return false
	}
	return true
}

// =============================================================================
// TIME PUNCHES
// =============================================================================

type PunchType string

const (
	PunchClockIn    PunchType = "clock_in"
	PunchClockOut   PunchType = "clock_out"
	PunchBreakStart PunchType = "break_start"
	PunchBreakEnd   PunchType = "break_end"
)

// TimePunch is a single clock-event record from a time-clock device.
type TimePunch struct {
	ID         string
	EmployeeID string
	PunchTime  time.Time
	PunchType  PunchType
}

// =============================================================================
// SHIFTS - Planned work for forward projection
// =============================================================================

// Shift is a scheduled work window. BreakMinutes is unpaid break time
// subtracted from the shift duration for hourly cost.
type Shift struct {
	ID           string
	EmployeeID   string
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
}

// =============================================================================
// WORK PERIOD - Derived, never persisted
// =============================================================================

// WorkPeriod is a reconstructed contiguous interval of work or break time.
type WorkPeriod struct {
	Start   time.Time
	End     time.Time
	Hours   float64
	IsBreak bool
}

// =============================================================================
// COMPENSATION SNAPSHOT
// =============================================================================

// CompensationSnapshot is an employee's resolved pay terms valid on a single
// calendar day. Only the fields relevant to Type are populated; the rest stay
// zero. All downstream cost math for that day must use the snapshot
// exclusively.
type CompensationSnapshot struct {
	Type CompensationType

	HourlyRateCents        int64
	SalaryAmountCents      int64
	PayPeriodType          PayPeriodType
	ContractorPaymentCents int64
	ContractorInterval     ContractorInterval
	DailyRateCents         int64
}

// =============================================================================
// MONEY - The single cents-to-dollars boundary
// =============================================================================

var centsPerDollar = decimal.NewFromInt(100)

// DollarsFromCents converts an integer cents amount into decimal dollars.
// This is the only place the /100 conversion happens; input fields are cents,
// every output cost field is dollars.
func DollarsFromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centsPerDollar)
}

// dollarsFromDecimalCents is the decimal-valued companion for amortization
// sums that carry fractional cents before the final rounding.
func dollarsFromDecimalCents(cents decimal.Decimal) decimal.Decimal {
	return cents.Div(centsPerDollar)
}
