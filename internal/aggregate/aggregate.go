// Package aggregate computes grouped sums over event record slices.
// Accumulation is plain float64 addition and grouping keys are compared
// exactly, with no case folding or trimming. Input order never affects
// the result.
package aggregate

// Row is one grouped total.
type Row struct {
	TotalWeight float64
	TotalAmount float64
	Count       int
}

// ByKey groups records by keyFn and accumulates weight, amount and count
// per group. Groups without records are never materialized: an empty
// input yields an empty, non-nil map. amountFn may be nil for record
// types that carry no monetary amount.
func ByKey[T any](records []T, keyFn func(T) string, weightFn, amountFn func(T) float64) map[string]Row {
	out := make(map[string]Row, len(records))
	for _, rec := range records {
		key := keyFn(rec)
		row := out[key]
		row.TotalWeight += weightFn(rec)
		if amountFn != nil {
			row.TotalAmount += amountFn(rec)
		}
		row.Count++
		out[key] = row
	}
	return out
}

// Total collapses all records into a single implicit group. An empty
// input yields an explicit zero-valued Row, matching the report shape
// contract for empty days.
func Total[T any](records []T, weightFn, amountFn func(T) float64) Row {
	var row Row
	for _, rec := range records {
		row.TotalWeight += weightFn(rec)
		if amountFn != nil {
			row.TotalAmount += amountFn(rec)
		}
		row.Count++
	}
	return row
}
