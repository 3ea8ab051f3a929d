package timegrid

import (
	"time"

	"skema/internal/item"
)

// DayItems is the per-day split the engine lays out: all-day items render
// in a separate fixed-height lane and never receive geometry.
type DayItems struct {
	AllDay []item.TimedItem
	Timed  []item.TimedItem
}

// ItemsForDay returns the subset of pool whose due date lands on the same
// local calendar day as date. Items without a due date are silently
// filtered; upstream data is allowed to be incomplete.
func (r Resolver) ItemsForDay(date time.Time, pool []item.TimedItem) DayItems {
	key := r.LocalDateKey(date)

	var out DayItems
	for _, it := range pool {
		if it.DueUTC.IsZero() {
			continue
		}
		if r.LocalDateKey(it.DueUTC) != key {
			continue
		}
		if it.AllDay {
			out.AllDay = append(out.AllDay, it)
		} else {
			out.Timed = append(out.Timed, it)
		}
	}
	return out
}
