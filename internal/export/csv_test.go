package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrftrack/internal/domain"
)

func sampleMonthly() *domain.MonthlyReport {
	return &domain.MonthlyReport{
		Year:  2024,
		Month: 3,
		MRFID: "MRF-001",
		DailySummaries: []domain.DailyReport{
			{
				Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				MRFID:       "MRF-001",
				WasteIntake: domain.IntakeTotal{TotalWeight: 100, Count: 2},
				SortedWaste: map[string]domain.SortedAggregate{
					"Plastic": {TotalWeight: 40, Count: 1},
					"Glass":   {TotalWeight: 60, Count: 1},
				},
				Sales: map[string]domain.SalesAggregate{
					"Plastic": {TotalWeight: 40, TotalAmount: 100, Count: 1},
				},
			},
			{
				Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
				MRFID:       "MRF-001",
				SortedWaste: map[string]domain.SortedAggregate{},
				Sales:       map[string]domain.SalesAggregate{},
			},
		},
		MonthlyTotals: domain.MonthlyTotals{
			TotalIntakeWeight: 100,
			TotalIntakeCount:  2,
			TotalSalesAmount:  100,
			TotalSalesWeight:  40,
		},
	}
}

func TestMonthlyCSV_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MonthlyCSV(&buf, sampleMonthly()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, string(utf8BOM)))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, string(utf8BOM))), "\n")
	// Header, two days, totals.
	require.Len(t, lines, 4)
	assert.Equal(t, "date,intake_weight_kg,intake_count,sorted_weight_kg,sales_weight_kg,sales_amount,transactions", lines[0])
	assert.Equal(t, "2024-03-01,100.00,2,100.00,40.00,100.00,1", lines[1])
	assert.Equal(t, "2024-03-02,0.00,0,0.00,0.00,0.00,0", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "TOTAL,100.00,2"))
}

func TestMonthlyXLSX_WritesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MonthlyXLSX(&buf, sampleMonthly()))

	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
