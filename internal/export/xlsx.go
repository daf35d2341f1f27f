package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"mrftrack/internal/domain"
)

// MonthlyXLSX writes a monthly report as a spreadsheet with two sheets:
// a per-day summary matching the CSV layout, and a category sheet with
// the per-day sales breakdown.
func MonthlyXLSX(w io.Writer, report *domain.MonthlyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Daily Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("export.MonthlyXLSX: %w", err)
	}

	header := []interface{}{"Date", "Intake Weight (kg)", "Intake Count", "Sorted Weight (kg)", "Sales Weight (kg)", "Sales Amount", "Transactions"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("export.MonthlyXLSX: %w", err)
	}

	for i, day := range report.DailySummaries {
		var sortedWeight float64
		for _, agg := range day.SortedWaste {
			sortedWeight += agg.TotalWeight
		}
		var salesWeight, salesAmount float64
		var transactions int
		for _, agg := range day.Sales {
			salesWeight += agg.TotalWeight
			salesAmount += agg.TotalAmount
			transactions += agg.Count
		}

		row := []interface{}{
			day.Date.Format("2006-01-02"),
			day.WasteIntake.TotalWeight,
			day.WasteIntake.Count,
			sortedWeight,
			salesWeight,
			salesAmount,
			transactions,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("export.MonthlyXLSX: %w", err)
		}
	}

	totalsRow := []interface{}{
		"TOTAL",
		report.MonthlyTotals.TotalIntakeWeight,
		report.MonthlyTotals.TotalIntakeCount,
		nil,
		report.MonthlyTotals.TotalSalesWeight,
		report.MonthlyTotals.TotalSalesAmount,
		nil,
	}
	totalsCell := fmt.Sprintf("A%d", len(report.DailySummaries)+2)
	if err := f.SetSheetRow(summarySheet, totalsCell, &totalsRow); err != nil {
		return fmt.Errorf("export.MonthlyXLSX: %w", err)
	}

	const categorySheet = "Sales by Category"
	if _, err := f.NewSheet(categorySheet); err != nil {
		return fmt.Errorf("export.MonthlyXLSX: %w", err)
	}
	catHeader := []interface{}{"Date", "Category", "Weight (kg)", "Amount", "Transactions"}
	if err := f.SetSheetRow(categorySheet, "A1", &catHeader); err != nil {
		return fmt.Errorf("export.MonthlyXLSX: %w", err)
	}

	rowIdx := 2
	for _, day := range report.DailySummaries {
		for _, category := range sortedKeys(day.Sales) {
			agg := day.Sales[category]
			row := []interface{}{
				day.Date.Format("2006-01-02"),
				category,
				agg.TotalWeight,
				agg.TotalAmount,
				agg.Count,
			}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(categorySheet, cell, &row); err != nil {
				return fmt.Errorf("export.MonthlyXLSX: %w", err)
			}
			rowIdx++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.MonthlyXLSX: %w", err)
	}
	return nil
}
