package item

import "time"

type Kind int

const (
	KindTask Kind = iota
	KindTodo
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindTodo:
		return "todo"
	case KindEvent:
		return "event"
	}
	return "unknown"
}

// ParseKind maps a source-file kind label to a Kind. The second return
// value is false for labels no source is expected to emit.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "task":
		return KindTask, true
	case "todo":
		return KindTodo, true
	case "event", "":
		return KindEvent, true
	}
	return KindEvent, false
}

// TimedItem is a calendar-attachable unit of work as delivered by the
// stores. StartTime/EndTime are local "HH:MM" clock strings; either may be
// empty, in which case the layout engine derives them from DueUTC. EndTime
// is exclusive: an item ending at "10:00" does not overlap one starting at
// "10:00".
type TimedItem struct {
	ID     string
	Kind   Kind
	AllDay bool

	StartTime string
	EndTime   string

	// DueUTC is the source of truth for day bucketing. The zero value
	// means the item has no usable date and is ignored by the engine.
	DueUTC time.Time

	// Display metadata, passed through the engine unchanged.
	Title   string
	Color   string
	Subject string
}
