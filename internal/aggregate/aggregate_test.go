package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	category string
	weight   float64
	amount   float64
}

func catKey(r record) string    { return r.category }
func weightOf(r record) float64 { return r.weight }
func amountOf(r record) float64 { return r.amount }

func TestByKey_GroupsByKey(t *testing.T) {
	records := []record{
		{category: "Plastic", weight: 40, amount: 100},
		{category: "Glass", weight: 60, amount: 30},
		{category: "Plastic", weight: 10, amount: 25},
	}

	rows := ByKey(records, catKey, weightOf, amountOf)

	assert.Len(t, rows, 2)
	assert.Equal(t, Row{TotalWeight: 50, TotalAmount: 125, Count: 2}, rows["Plastic"])
	assert.Equal(t, Row{TotalWeight: 60, TotalAmount: 30, Count: 1}, rows["Glass"])
}

func TestByKey_EmptyInputYieldsEmptyMap(t *testing.T) {
	rows := ByKey(nil, catKey, weightOf, amountOf)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestByKey_NilAmountFn(t *testing.T) {
	records := []record{
		{category: "Plastic", weight: 40, amount: 100},
	}

	rows := ByKey(records, catKey, weightOf, nil)

	assert.Equal(t, Row{TotalWeight: 40, TotalAmount: 0, Count: 1}, rows["Plastic"])
}

func TestByKey_ExactKeyMatch(t *testing.T) {
	records := []record{
		{category: "Plastic", weight: 40},
		{category: "plastic", weight: 10},
		{category: "Plastic ", weight: 5},
	}

	rows := ByKey(records, catKey, weightOf, nil)

	assert.Len(t, rows, 3)
	assert.Equal(t, 1, rows["Plastic"].Count)
}

func TestTotal_CollapsesEverything(t *testing.T) {
	records := []record{
		{weight: 100, amount: 10},
		{weight: 50, amount: 5},
	}

	row := Total(records, weightOf, amountOf)

	assert.Equal(t, Row{TotalWeight: 150, TotalAmount: 15, Count: 2}, row)
}

func TestTotal_EmptyInputIsZeroRow(t *testing.T) {
	row := Total(nil, weightOf, amountOf)

	assert.Equal(t, Row{}, row)
}
