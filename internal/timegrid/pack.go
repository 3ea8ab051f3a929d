package timegrid

import "sort"

// Packed is a span with its column assignment within a cluster.
// TotalColumns is identical for every member of a cluster so renderers
// can divide the day column into equal-width lanes.
type Packed struct {
	Span
	ColumnIndex  int
	TotalColumns int
}

// PackColumns assigns each span in one cluster a column such that no two
// overlapping spans share a column. Spans are processed in ascending
// start order and placed in the first existing column free of conflicts,
// appending a new column only when none fits.
//
// The greedy first-fit is not a minimum coloring; an exact interval-graph
// solver can occasionally use fewer columns. The invariant callers depend
// on is only that same-column spans never overlap, and first-fit
// guarantees that while staying stable under the clusterer's ordering.
func PackColumns(cluster []Span) []Packed {
	sorted := make([]Span, len(cluster))
	copy(sorted, cluster)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartMin != sorted[j].StartMin {
			return sorted[i].StartMin < sorted[j].StartMin
		}
		return sorted[i].Item.ID < sorted[j].Item.ID
	})

	var columns [][]Span
	assigned := make([]int, len(sorted))
	for i, s := range sorted {
		placed := -1
		for ci, col := range columns {
			free := true
			for _, member := range col {
				if Overlaps(s.StartMin, s.EndMin, member.StartMin, member.EndMin) {
					free = false
					break
				}
			}
			if free {
				placed = ci
				break
			}
		}
		if placed == -1 {
			columns = append(columns, nil)
			placed = len(columns) - 1
		}
		columns[placed] = append(columns[placed], s)
		assigned[i] = placed
	}

	out := make([]Packed, len(sorted))
	for i, s := range sorted {
		out[i] = Packed{Span: s, ColumnIndex: assigned[i], TotalColumns: len(columns)}
	}
	return out
}
