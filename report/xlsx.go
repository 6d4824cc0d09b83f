/*
Package report renders labor-cost results as XLSX workbooks.

PURPOSE:
  Restaurant operators hand labor-cost numbers to bookkeepers, and
  bookkeepers live in spreadsheets. This package turns a LaborCostResult
  into a two-sheet workbook: a per-day detail sheet and a period summary
  sheet.

OUTPUT SHAPE:
  Sheet "Daily Costs":
    Date | Hourly | Salary | Contractor | Daily Rate | Total | Hours
  Sheet "Summary":
    one row per pay model with cost and hours/employee counts.

All workbook cost cells are dollars, matching the engine's output contract.
*/
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/platewise/labor-engine/labor"
)

const (
	dailySheet   = "Daily Costs"
	summarySheet = "Summary"
)

// WriteLaborCostXLSX renders the result as an XLSX workbook into w.
func WriteLaborCostXLSX(w io.Writer, result labor.LaborCostResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dailySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	if err := writeDailySheet(f, result.DailyCosts); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result.Breakdown); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeDailySheet(f *excelize.File, daily []labor.DailyLaborCost) error {
	header := []any{"Date", "Hourly", "Salary", "Contractor", "Daily Rate", "Total", "Hours"}
	if err := f.SetSheetRow(dailySheet, "A1", &header); err != nil {
		return fmt.Errorf("daily header: %w", err)
	}

	for i, dc := range daily {
		row := []any{
			dc.Date.String(),
			dollars(dc.HourlyCost),
			dollars(dc.SalaryCost),
			dollars(dc.ContractorCost),
			dollars(dc.DailyRateCost),
			dollars(dc.TotalCost),
			dc.HoursWorked,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(dailySheet, cell, &row); err != nil {
			return fmt.Errorf("daily row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, b labor.LaborCostBreakdown) error {
	rows := [][]any{
		{"Pay Model", "Cost", "Hours", "Employees", "Days Scheduled"},
		{"Hourly", dollars(b.Hourly.Cost), b.Hourly.Hours, nil, nil},
		{"Salary", dollars(b.Salary.Cost), nil, b.Salary.Employees, b.Salary.DaysScheduled},
		{"Contractor", dollars(b.Contractor.Cost), nil, b.Contractor.Employees, b.Contractor.DaysScheduled},
		{"Daily Rate", dollars(b.DailyRate.Cost), nil, b.DailyRate.Employees, b.DailyRate.DaysScheduled},
		{"Total", dollars(b.Total), nil, nil, nil},
	}
	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func dollars(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
