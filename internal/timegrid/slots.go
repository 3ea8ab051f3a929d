package timegrid

import "fmt"

// GridRange is a visible hour window. Both hours are inclusive marks; an
// EndHour numerically below StartHour means the window wraps past
// midnight (e.g. 6..2 shows 06:00 through 02:00 the next morning).
type GridRange struct {
	Name      string
	StartHour int
	EndHour   int
}

// Presets recognized by the configuration layer, in cycling order.
var Presets = []GridRange{
	{Name: "work", StartHour: 6, EndHour: 18},
	{Name: "extended", StartHour: 6, EndHour: 2},
	{Name: "full", StartHour: 0, EndHour: 23},
}

// Preset looks up a named grid range.
func Preset(name string) (GridRange, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return GridRange{}, false
}

// VisibleHours returns the number of hour slots a window spans.
func VisibleHours(startHour, endHour int) int {
	if endHour < startHour {
		return (24 - startHour) + endHour + 1
	}
	return endHour - startHour + 1
}

// BuildSlots produces the ordered hour labels for a window, one "HH:00"
// label per visible hour. Fails with ErrInvalidRange when either hour is
// outside [0, 23].
func BuildSlots(startHour, endHour int) ([]string, error) {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 {
		return nil, fmt.Errorf("%w: hours %d..%d", ErrInvalidRange, startHour, endHour)
	}

	total := VisibleHours(startHour, endHour)
	slots := make([]string, 0, total)
	for i := 0; i < total; i++ {
		slots = append(slots, fmt.Sprintf("%02d:00", (startHour+i)%24))
	}
	return slots, nil
}
