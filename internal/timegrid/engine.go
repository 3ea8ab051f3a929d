package timegrid

import (
	"fmt"
	"time"

	"skema/internal/item"
	"skema/internal/log"
)

// Input is one layout pass for one visible day. The pool may contain
// items for any day; bucketing happens inside.
type Input struct {
	Items         []item.TimedItem
	Day           time.Time
	GridStartHour int
	GridEndHour   int
	PixelsPerHour float64
	OffsetMinutes int
	Now           time.Time
}

// Positioned is a timed item with computed layout: a column assignment
// within its overlap cluster, vertical pixel geometry, and horizontal
// percentages of the day column's width. The embedded item carries its
// resolved StartTime/EndTime.
type Positioned struct {
	item.TimedItem
	ColumnIndex  int
	TotalColumns int
	Top          float64
	Height       float64
	Left         float64
	Width        float64
}

// Output is everything a renderer needs for one day column. NowOffsetHours
// is nil when the current time falls outside the visible window.
type Output struct {
	AllDay         []item.TimedItem
	Positioned     []Positioned
	Slots          []string
	NowOffsetHours *float64
}

// Layout runs the full pipeline: bucket the pool to the requested day,
// resolve clock ranges, cluster overlapping items, pack clusters into
// columns and project geometry. Malformed or out-of-window items are
// skipped and logged; an invalid grid configuration fails the whole call.
//
// Everything is recomputed from scratch per call. Inputs are small and
// change often, so determinism wins over memoization.
func Layout(in Input) (Output, error) {
	slots, err := BuildSlots(in.GridStartHour, in.GridEndHour)
	if err != nil {
		return Output{}, err
	}
	if in.PixelsPerHour <= 0 {
		return Output{}, fmt.Errorf("%w: pixels per hour %v", ErrInvalidRange, in.PixelsPerHour)
	}

	r := Resolver{OffsetMinutes: in.OffsetMinutes}
	day := r.ItemsForDay(in.Day, in.Items)

	// Spans carry minutes measured from the grid's start hour so that a
	// window wrapping past midnight stays monotonic: an item at 01:00 in a
	// 06:00..02:00 window sorts and projects below 23:00, not above 06:00.
	gridStartMin := in.GridStartHour * 60
	wraps := in.GridEndHour < in.GridStartHour

	spans := make([]Span, 0, len(day.Timed))
	for _, it := range day.Timed {
		start, end, err := r.ResolveRange(it)
		if err != nil {
			log.Debug("skipping item with unusable time", "id", it.ID, "start", it.StartTime)
			continue
		}
		startMin, err := ToMinutes(start)
		if err != nil {
			log.Debug("skipping item with malformed start", "id", it.ID, "start", start)
			continue
		}
		endMin, err := ToMinutes(end)
		if err != nil {
			log.Debug("skipping item with malformed end", "id", it.ID, "end", end)
			continue
		}
		if endMin <= startMin {
			log.Debug("skipping item with non-positive duration", "id", it.ID, "start", start, "end", end)
			continue
		}

		rel := startMin - gridStartMin
		if wraps && rel < 0 {
			rel += 24 * 60
		}
		if rel < 0 {
			log.Debug("skipping item outside grid window", "id", it.ID, "start", start,
				"reason", ErrItemOutOfGrid)
			continue
		}

		it.StartTime, it.EndTime = start, end
		spans = append(spans, Span{Item: it, StartMin: rel, EndMin: rel + (endMin - startMin)})
	}

	out := Output{AllDay: day.AllDay, Slots: slots}
	for _, cluster := range ClusterByOverlap(spans) {
		for _, p := range PackColumns(cluster) {
			// Span minutes are already grid-relative, so project from hour 0.
			top, height := Project(p.Span, 0, in.PixelsPerHour)
			left, width := HorizontalSlot(p.ColumnIndex, p.TotalColumns)
			out.Positioned = append(out.Positioned, Positioned{
				TimedItem:    p.Item,
				ColumnIndex:  p.ColumnIndex,
				TotalColumns: p.TotalColumns,
				Top:          top,
				Height:       height,
				Left:         left,
				Width:        width,
			})
		}
	}

	if off, ok := NowOffset(in.Now.In(r.Location()), in.GridStartHour, in.GridEndHour); ok {
		out.NowOffsetHours = &off
	}
	return out, nil
}
