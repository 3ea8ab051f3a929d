package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"skema/internal/item"
	"skema/internal/log"
)

// ICSFiles reads VEVENTs from exported iCalendar files (a Canvas course
// export, a shared class calendar) and maps them to Kind=event items.
// Recurrence rules are not expanded: each VEVENT contributes exactly one
// item on its DTSTART day.
type ICSFiles struct {
	paths []string
	// offsetMinutes localizes DTSTART/DTEND into the viewer's clock.
	offsetMinutes int
}

func NewICSFiles(paths []string, offsetMinutes int) *ICSFiles {
	return &ICSFiles{paths: paths, offsetMinutes: offsetMinutes}
}

func (s *ICSFiles) Files() []string {
	return s.paths
}

func (s *ICSFiles) Items(from, to time.Time) ([]item.TimedItem, error) {
	var out []item.TimedItem
	for _, path := range s.paths {
		items, err := s.loadICSFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		for _, it := range items {
			if inWindow(it.DueUTC, from, to) {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (s *ICSFiles) loadICSFile(path string) ([]item.TimedItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, err
	}

	loc := time.FixedZone("viewer", s.offsetMinutes*60)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var items []item.TimedItem
	for i, ve := range cal.Events() {
		it, err := s.toItem(ve, loc, base, i)
		if err != nil {
			log.Info("skipping vevent", "file", path, "index", i, "reason", err)
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *ICSFiles) toItem(ve *ical.VEvent, loc *time.Location, base string, index int) (item.TimedItem, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		return item.TimedItem{}, fmt.Errorf("missing DTSTART: %w", err)
	}

	it := item.TimedItem{
		Kind:   item.KindEvent,
		DueUTC: start.UTC(),
	}

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		it.ID = p.Value
	} else {
		it.ID = fmt.Sprintf("%s-%d", base, index)
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		it.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		it.Subject = p.Value
	}

	if isAllDay(ve) {
		it.AllDay = true
		return it, nil
	}

	localStart := start.In(loc)
	it.StartTime = localStart.Format("15:04")

	if end, err := ve.GetEndAt(); err == nil && end.After(start) {
		localEnd := end.In(loc)
		if localEnd.Format("2006-01-02") == localStart.Format("2006-01-02") {
			it.EndTime = localEnd.Format("15:04")
		} else {
			// Spills into the next local day; pin it to its start day.
			it.EndTime = "23:59"
		}
	}
	return it, nil
}

// isAllDay detects date-valued DTSTART (VALUE=DATE or a bare YYYYMMDD).
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}
