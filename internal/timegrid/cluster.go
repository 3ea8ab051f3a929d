package timegrid

import (
	"sort"

	"skema/internal/item"
)

// Span is a timed item with its clock range resolved to minutes since
// midnight. EndMin is exclusive.
type Span struct {
	Item     item.TimedItem
	StartMin int
	EndMin   int
}

// ClusterByOverlap partitions spans into connected components of the
// overlap graph: two spans share a cluster iff a chain of pairwise
// overlaps connects them. Every span lands in exactly one cluster.
//
// Each span is tested against every member of every existing cluster, and
// all clusters it overlaps are merged before it is added. A first-match
// scan is not enough: a span can bridge two clusters that were separate
// until it arrived, and keeping them apart would let the column packer
// hand out conflicting widths.
func ClusterByOverlap(spans []Span) [][]Span {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartMin != sorted[j].StartMin {
			return sorted[i].StartMin < sorted[j].StartMin
		}
		return sorted[i].Item.ID < sorted[j].Item.ID
	})

	var clusters [][]Span
	for _, s := range sorted {
		var matched []int
		for ci, cluster := range clusters {
			for _, member := range cluster {
				if Overlaps(s.StartMin, s.EndMin, member.StartMin, member.EndMin) {
					matched = append(matched, ci)
					break
				}
			}
		}

		switch len(matched) {
		case 0:
			clusters = append(clusters, []Span{s})
		case 1:
			clusters[matched[0]] = append(clusters[matched[0]], s)
		default:
			// s bridges several clusters: fold them into the first,
			// removing from the back so earlier indexes stay valid.
			merged := clusters[matched[0]]
			for i := len(matched) - 1; i >= 1; i-- {
				merged = append(merged, clusters[matched[i]]...)
				clusters = append(clusters[:matched[i]], clusters[matched[i]+1:]...)
			}
			clusters[matched[0]] = append(merged, s)
		}
	}
	return clusters
}
