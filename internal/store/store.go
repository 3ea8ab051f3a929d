// Package store loads timed items from the configured sources: YAML item
// files maintained by hand or by an exporter, and ICS calendar files.
package store

import (
	"time"

	"skema/internal/item"
)

// Source provides items for a date window. Implementations read their
// backing files on every call; callers decide when to refresh.
type Source interface {
	// Items returns items whose due date falls inside [from, to). A day
	// of slack either side is acceptable: day bucketing downstream is
	// offset-aware and re-filters exactly.
	Items(from, to time.Time) ([]item.TimedItem, error)
	// Files returns the backing file paths, for change watching.
	Files() []string
}

// inWindow applies the loose window filter shared by the file sources.
func inWindow(due, from, to time.Time) bool {
	if due.IsZero() {
		return false
	}
	return due.After(from.Add(-24*time.Hour)) && due.Before(to.Add(24*time.Hour))
}
