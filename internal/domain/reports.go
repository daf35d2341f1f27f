package domain

import "time"

// Derived report values. All of these are immutable value objects:
// recomputing with the same inputs against the same stored state yields
// the same output.

// IntakeTotal is the collapsed intake aggregate for one facility and day.
type IntakeTotal struct {
	TotalWeight float64 `json:"total_weight"`
	Count       int     `json:"count"`
}

// SortedAggregate is a per-category rollup of sorted-waste events.
type SortedAggregate struct {
	TotalWeight float64 `json:"total_weight"`
	Count       int     `json:"count"`
}

// SalesAggregate is a per-category rollup of sale events, amounts included.
type SalesAggregate struct {
	TotalWeight float64 `json:"total_weight"`
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

// DailyReport is the snapshot of one calendar day at one facility.
// Breakdown maps are always present; an empty day yields empty maps and
// a zero-valued WasteIntake, never omitted keys.
type DailyReport struct {
	Date        time.Time                  `json:"date"`
	MRFID       string                     `json:"mrf_id"`
	WasteIntake IntakeTotal                `json:"waste_intake"`
	SortedWaste map[string]SortedAggregate `json:"sorted_waste"`
	Sales       map[string]SalesAggregate  `json:"sales"`
}

// MonthlyTotals is the reduction of a month of daily reports.
type MonthlyTotals struct {
	TotalIntakeWeight float64 `json:"total_intake_weight"`
	TotalIntakeCount  int     `json:"total_intake_count"`
	TotalSalesAmount  float64 `json:"total_sales_amount"`
	TotalSalesWeight  float64 `json:"total_sales_weight"`
}

// MonthlyReport holds one DailyReport per calendar day, in chronological
// order, plus the month-level totals.
type MonthlyReport struct {
	Year           int           `json:"year"`
	Month          int           `json:"month"`
	MRFID          string        `json:"mrf_id"`
	DailySummaries []DailyReport `json:"daily_summaries"`
	MonthlyTotals  MonthlyTotals `json:"monthly_totals"`
}

// FacilitySummary is one facility's entry in the cross-facility report.
type FacilitySummary struct {
	TotalIntakeWeight float64 `json:"total_intake_weight"`
	IntakeCount       int     `json:"intake_count"`
	TotalSalesAmount  float64 `json:"total_sales_amount"`
	TotalSalesWeight  float64 `json:"total_sales_weight"`
	TransactionCount  int     `json:"transaction_count"`
}

// CrossFacilityTotals sums every FacilitySummary field across facilities.
type CrossFacilityTotals struct {
	TotalIntakeWeight float64 `json:"total_intake_weight"`
	TotalIntakeCount  int     `json:"total_intake_count"`
	TotalSalesAmount  float64 `json:"total_sales_amount"`
	TotalSalesWeight  float64 `json:"total_sales_weight"`
	TotalTransactions int     `json:"total_transactions"`
}

// CrossFacilityReport covers an arbitrary date range across all
// facilities. The summary map is keyed by mrf_id.
type CrossFacilityReport struct {
	StartDate     time.Time                  `json:"start_date"`
	EndDate       time.Time                  `json:"end_date"`
	MRFSummary    map[string]FacilitySummary `json:"mrf_summary"`
	OverallTotals CrossFacilityTotals        `json:"overall_totals"`
}

// SalesOverall is the flat rollup in a sales summary.
type SalesOverall struct {
	TotalWeight       float64 `json:"total_weight"`
	TotalAmount       float64 `json:"total_amount"`
	TotalTransactions int     `json:"total_transactions"`
}

// SalesSummary is the category-wise sales rollup for one facility.
type SalesSummary struct {
	CategoryWise map[string]SalesAggregate `json:"category_wise"`
	Overall      SalesOverall              `json:"overall"`
}
