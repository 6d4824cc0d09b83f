/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

UNITS:
  Rate and amount REQUEST fields are integer cents. All cost RESPONSE
  fields are float64 dollars. The conversion happens inside the engine
  (labor.DollarsFromCents); DTOs only carry the already-converted values.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - labor/types.go: The domain model behind them
*/
package api

import (
	"time"

	"github.com/platewise/labor-engine/labor"
)

// =============================================================================
// EMPLOYEE TYPES
// =============================================================================

// CompensationEntryDTO is one effective-dated pay change.
type CompensationEntryDTO struct {
	EffectiveDate    string `json:"effective_date"`
	CompensationType string `json:"compensation_type"`
	AmountCents      int64  `json:"amount_cents"`
	PayPeriodType    string `json:"pay_period_type,omitempty"`
}

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Status                 string                 `json:"status"`
	CompensationType       string                 `json:"compensation_type"`
	HourlyRateCents        int64                  `json:"hourly_rate_cents,omitempty"`
	SalaryAmountCents      int64                  `json:"salary_amount_cents,omitempty"`
	PayPeriodType          string                 `json:"pay_period_type,omitempty"`
	ContractorPaymentCents int64                  `json:"contractor_payment_cents,omitempty"`
	ContractorInterval     string                 `json:"contractor_payment_interval,omitempty"`
	DailyRateCents         int64                  `json:"daily_rate_cents,omitempty"`
	HireDate               string                 `json:"hire_date,omitempty"`
	TerminationDate        string                 `json:"termination_date,omitempty"`
	CompensationHistory    []CompensationEntryDTO `json:"compensation_history,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
// ID is optional; the server generates one when absent.
type CreateEmployeeRequest struct {
	ID                     string                 `json:"id,omitempty"`
	Name                   string                 `json:"name"`
	Status                 string                 `json:"status"`
	CompensationType       string                 `json:"compensation_type"`
	HourlyRateCents        int64                  `json:"hourly_rate_cents,omitempty"`
	SalaryAmountCents      int64                  `json:"salary_amount_cents,omitempty"`
	PayPeriodType          string                 `json:"pay_period_type,omitempty"`
	ContractorPaymentCents int64                  `json:"contractor_payment_cents,omitempty"`
	ContractorInterval     string                 `json:"contractor_payment_interval,omitempty"`
	DailyRateCents         int64                  `json:"daily_rate_cents,omitempty"`
	HireDate               string                 `json:"hire_date,omitempty"`
	TerminationDate        string                 `json:"termination_date,omitempty"`
	CompensationHistory    []CompensationEntryDTO `json:"compensation_history,omitempty"`
}

// =============================================================================
// PUNCH AND SHIFT TYPES
// =============================================================================

// PunchDTO represents a time punch in API responses.
type PunchDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	PunchTime  string `json:"punch_time"`
	PunchType  string `json:"punch_type"`
}

// RecordPunchRequest records a clock event for the employee in the URL.
type RecordPunchRequest struct {
	PunchTime string `json:"punch_time"` // RFC 3339
	PunchType string `json:"punch_type"`
}

// ShiftDTO represents a planned shift.
type ShiftDTO struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_duration"`
}

// CreateShiftRequest is the request to plan a shift.
type CreateShiftRequest struct {
	EmployeeID   string `json:"employee_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_duration"`
}

// =============================================================================
// LABOR COST TYPES
// =============================================================================

// DailyLaborCostDTO is one day's cost, all fields in dollars.
type DailyLaborCostDTO struct {
	Date           string  `json:"date"`
	HourlyCost     float64 `json:"hourly_cost"`
	SalaryCost     float64 `json:"salary_cost"`
	ContractorCost float64 `json:"contractor_cost"`
	DailyRateCost  float64 `json:"daily_rate_cost"`
	TotalCost      float64 `json:"total_cost"`
	HoursWorked    float64 `json:"hours_worked"`
}

// HourlySummaryDTO aggregates the hourly bucket.
type HourlySummaryDTO struct {
	Cost  float64 `json:"cost"`
	Hours float64 `json:"hours"`
}

// FixedSummaryDTO aggregates a fixed-pay bucket.
type FixedSummaryDTO struct {
	Cost          float64 `json:"cost"`
	Employees     int     `json:"employees"`
	DaysScheduled int     `json:"days_scheduled"`
}

// BreakdownDTO is the period aggregate across pay models.
type BreakdownDTO struct {
	Hourly     HourlySummaryDTO `json:"hourly"`
	Salary     FixedSummaryDTO  `json:"salary"`
	Contractor FixedSummaryDTO  `json:"contractor"`
	DailyRate  FixedSummaryDTO  `json:"daily_rate"`
	Total      float64          `json:"total"`
}

// LaborCostResponse pairs the breakdown with per-day detail.
type LaborCostResponse struct {
	Breakdown  BreakdownDTO        `json:"breakdown"`
	DailyCosts []DailyLaborCostDTO `json:"daily_costs"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEmployeeDTO(emp *labor.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:                     emp.ID,
		Name:                   emp.Name,
		Status:                 string(emp.Status),
		CompensationType:       string(emp.CompensationType),
		HourlyRateCents:        emp.HourlyRateCents,
		SalaryAmountCents:      emp.SalaryAmountCents,
		PayPeriodType:          string(emp.PayPeriodType),
		ContractorPaymentCents: emp.ContractorPaymentCents,
		ContractorInterval:     string(emp.ContractorInterval),
		DailyRateCents:         emp.DailyRateCents,
	}
	if !emp.HireDate.IsZero() {
		dto.HireDate = emp.HireDate.String()
	}
	if !emp.TerminationDate.IsZero() {
		dto.TerminationDate = emp.TerminationDate.String()
	}
	for _, entry := range emp.CompensationHistory {
		dto.CompensationHistory = append(dto.CompensationHistory, CompensationEntryDTO{
			EffectiveDate:    entry.EffectiveDate.String(),
			CompensationType: string(entry.CompensationType),
			AmountCents:      entry.AmountCents,
			PayPeriodType:    string(entry.PayPeriodType),
		})
	}
	return dto
}

func toPunchDTO(p labor.TimePunch) PunchDTO {
	return PunchDTO{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		PunchTime:  p.PunchTime.Format(time.RFC3339),
		PunchType:  string(p.PunchType),
	}
}

func toShiftDTO(s labor.Shift) ShiftDTO {
	return ShiftDTO{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		BreakMinutes: s.BreakMinutes,
	}
}

func toLaborCostResponse(result labor.LaborCostResult) LaborCostResponse {
	resp := LaborCostResponse{
		Breakdown: BreakdownDTO{
			Hourly: HourlySummaryDTO{
				Cost:  result.Breakdown.Hourly.Cost.InexactFloat64(),
				Hours: result.Breakdown.Hourly.Hours,
			},
			Salary: FixedSummaryDTO{
				Cost:          result.Breakdown.Salary.Cost.InexactFloat64(),
				Employees:     result.Breakdown.Salary.Employees,
				DaysScheduled: result.Breakdown.Salary.DaysScheduled,
			},
			Contractor: FixedSummaryDTO{
				Cost:          result.Breakdown.Contractor.Cost.InexactFloat64(),
				Employees:     result.Breakdown.Contractor.Employees,
				DaysScheduled: result.Breakdown.Contractor.DaysScheduled,
			},
			DailyRate: FixedSummaryDTO{
				Cost:          result.Breakdown.DailyRate.Cost.InexactFloat64(),
				Employees:     result.Breakdown.DailyRate.Employees,
				DaysScheduled: result.Breakdown.DailyRate.DaysScheduled,
			},
			Total: result.Breakdown.Total.InexactFloat64(),
		},
		DailyCosts: make([]DailyLaborCostDTO, len(result.DailyCosts)),
	}
	for i, dc := range result.DailyCosts {
		resp.DailyCosts[i] = DailyLaborCostDTO{
			Date:           dc.Date.String(),
			HourlyCost:     dc.HourlyCost.InexactFloat64(),
			SalaryCost:     dc.SalaryCost.InexactFloat64(),
			ContractorCost: dc.ContractorCost.InexactFloat64(),
			DailyRateCost:  dc.DailyRateCost.InexactFloat64(),
			TotalCost:      dc.TotalCost.InexactFloat64(),
			HoursWorked:    dc.HoursWorked,
		}
	}
	return resp
}

func toEmployee(req CreateEmployeeRequest) (labor.Employee, error) {
	emp := labor.Employee{
		ID:                     req.ID,
		Name:                   req.Name,
		Status:                 labor.EmployeeStatus(req.Status),
		CompensationType:       labor.CompensationType(req.CompensationType),
		HourlyRateCents:        req.HourlyRateCents,
		SalaryAmountCents:      req.SalaryAmountCents,
		PayPeriodType:          labor.PayPeriodType(req.PayPeriodType),
		ContractorPaymentCents: req.ContractorPaymentCents,
		ContractorInterval:     labor.ContractorInterval(req.ContractorInterval),
		DailyRateCents:         req.DailyRateCents,
	}

	var err error
	if req.HireDate != "" {
		if emp.HireDate, err = labor.ParseDay(req.HireDate); err != nil {
			return emp, err
		}
	}
	if req.TerminationDate != "" {
		if emp.TerminationDate, err = labor.ParseDay(req.TerminationDate); err != nil {
			return emp, err
		}
	}
	for _, entry := range req.CompensationHistory {
		day, err := labor.ParseDay(entry.EffectiveDate)
		if err != nil {
			return emp, err
		}
		emp.CompensationHistory = append(emp.CompensationHistory, labor.CompensationEntry{
			EffectiveDate:    day,
			CompensationType: labor.CompensationType(entry.CompensationType),
			AmountCents:      entry.AmountCents,
			PayPeriodType:    labor.PayPeriodType(entry.PayPeriodType),
		})
	}
	return emp, nil
}
