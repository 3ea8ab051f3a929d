package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"skema/internal/item"
	"skema/internal/log"
)

// YAMLFiles reads items from one or more YAML files. Each file holds an
// `items` list; records that cannot be used (bad kind, bad due date) are
// skipped with a log line rather than failing the whole file, since item
// files are edited by hand.
type YAMLFiles struct {
	paths []string
}

func NewYAMLFiles(paths []string) *YAMLFiles {
	return &YAMLFiles{paths: paths}
}

func (y *YAMLFiles) Files() []string {
	return y.paths
}

type yamlRecord struct {
	ID      string `yaml:"id"`
	Kind    string `yaml:"kind"`
	Title   string `yaml:"title"`
	Due     string `yaml:"due"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	AllDay  bool   `yaml:"all_day"`
	Color   string `yaml:"color"`
	Subject string `yaml:"subject"`
}

type yamlDoc struct {
	Items []yamlRecord `yaml:"items"`
}

func (y *YAMLFiles) Items(from, to time.Time) ([]item.TimedItem, error) {
	var out []item.TimedItem
	for _, path := range y.paths {
		items, err := loadYAMLFile(path)
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

func loadYAMLFile(path string) ([]item.TimedItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	items := make([]item.TimedItem, 0, len(doc.Items))
	for i, rec := range doc.Items {
		it, err := rec.toItem(base, i)
		if err != nil {
			log.Info("skipping item record", "file", path, "index", i, "reason", err)
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (rec yamlRecord) toItem(base string, index int) (item.TimedItem, error) {
	kind, ok := item.ParseKind(rec.Kind)
	if !ok {
		return item.TimedItem{}, fmt.Errorf("unknown kind %q", rec.Kind)
	}

	due, err := parseDue(rec.Due)
	if err != nil {
		return item.TimedItem{}, fmt.Errorf("bad due date %q: %w", rec.Due, err)
	}

	id := rec.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", base, index)
	}

	return item.TimedItem{
		ID:        id,
		Kind:      kind,
		AllDay:    rec.AllDay,
		StartTime: rec.Start,
		EndTime:   rec.End,
		DueUTC:    due.UTC(),
		Title:     rec.Title,
		Color:     rec.Color,
		Subject:   rec.Subject,
	}, nil
}

// parseDue accepts RFC 3339 instants and bare dates; a bare date means
// midnight UTC, which keeps it on that day for any sane viewer offset.
func parseDue(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing due date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
