package timegrid

import (
	"time"

	"skema/internal/item"
)

// defaultDurationMin is applied when an item has a start but no end.
const defaultDurationMin = 60

// Resolver localizes UTC instants into the viewer's calendar frame. The
// offset comes from configuration rather than the host timezone so that a
// grid rendered for one viewer stays stable regardless of where the
// process runs.
type Resolver struct {
	// OffsetMinutes is the viewer's offset east of UTC, e.g. 120 for UTC+2.
	OffsetMinutes int
}

// Location returns the fixed zone the resolver localizes into.
func (r Resolver) Location() *time.Location {
	return time.FixedZone("viewer", r.OffsetMinutes*60)
}

// LocalDateKey returns the local calendar day of a UTC instant as
// "YYYY-MM-DD". An instant late in the UTC day may land on the next local
// day (or the previous one, for negative offsets).
func (r Resolver) LocalDateKey(t time.Time) string {
	return t.In(r.Location()).Format("2006-01-02")
}

// LocalClock returns the local wall-clock time of a UTC instant as "HH:MM".
func (r Resolver) LocalClock(t time.Time) string {
	return t.In(r.Location()).Format("15:04")
}

// ResolveRange determines an item's local clock range. All-day items have
// no range. A missing start time is derived from DueUTC; a missing end
// time defaults to one hour after the start, capped at 23:59 so the item
// stays on its calendar day.
func (r Resolver) ResolveRange(it item.TimedItem) (start, end string, err error) {
	if it.AllDay {
		return "", "", nil
	}

	start = it.StartTime
	if start == "" {
		if it.DueUTC.IsZero() {
			return "", "", ErrInvalidTimeFormat
		}
		start = r.LocalClock(it.DueUTC)
	}
	startMin, err := ToMinutes(start)
	if err != nil {
		return "", "", err
	}

	end = it.EndTime
	if end == "" {
		endMin := startMin + defaultDurationMin
		if endMin > 1439 {
			endMin = 1439
		}
		end = FormatMinutes(endMin)
	}
	return start, end, nil
}
