package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"mrftrack/internal/domain"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MonthlyCSV writes a monthly report as CSV, one row per calendar day
// followed by a totals row. Sorted and sales breakdowns are collapsed
// into per-day sums; category detail stays in the JSON and XLSX forms.
func MonthlyCSV(w io.Writer, report *domain.MonthlyReport) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("export.MonthlyCSV: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"date", "intake_weight_kg", "intake_count", "sorted_weight_kg", "sales_weight_kg", "sales_amount", "transactions"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export.MonthlyCSV: %w", err)
	}

	for _, day := range report.DailySummaries {
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

		row := []string{
			day.Date.Format("2006-01-02"),
			formatFloat(day.WasteIntake.TotalWeight),
			fmt.Sprintf("%d", day.WasteIntake.Count),
			formatFloat(sortedWeight),
			formatFloat(salesWeight),
			formatFloat(salesAmount),
			fmt.Sprintf("%d", transactions),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export.MonthlyCSV: %w", err)
		}
	}

	totals := []string{
		"TOTAL",
		formatFloat(report.MonthlyTotals.TotalIntakeWeight),
		fmt.Sprintf("%d", report.MonthlyTotals.TotalIntakeCount),
		"",
		formatFloat(report.MonthlyTotals.TotalSalesWeight),
		formatFloat(report.MonthlyTotals.TotalSalesAmount),
		"",
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("export.MonthlyCSV: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.MonthlyCSV: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// sortedKeys returns map keys in stable order for deterministic output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
