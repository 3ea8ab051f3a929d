package store

import (
	"sort"
	"time"

	"skema/internal/item"
	"skema/internal/log"
)

// Composite merges several sources into one. A source that fails is
// logged and skipped so one broken file does not blank the whole grid;
// items are deduplicated by ID, first source wins.
type Composite struct {
	sources []Source
}

func NewComposite(sources ...Source) *Composite {
	return &Composite{sources: sources}
}

func (c *Composite) Add(s Source) {
	c.sources = append(c.sources, s)
}

func (c *Composite) Items(from, to time.Time) ([]item.TimedItem, error) {
	seen := make(map[string]bool)
	var out []item.TimedItem

	for _, src := range c.sources {
		items, err := src.Items(from, to)
		if err != nil {
			log.Error("item source failed", err, "files", src.Files())
			continue
		}
		for _, it := range items {
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			out = append(out, it)
		}
	}

	// Stable output regardless of map/source ordering quirks.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueUTC.Equal(out[j].DueUTC) {
			return out[i].DueUTC.Before(out[j].DueUTC)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (c *Composite) Files() []string {
	var files []string
	for _, src := range c.sources {
		files = append(files, src.Files()...)
	}
	return files
}
