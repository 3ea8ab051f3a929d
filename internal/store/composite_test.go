package store

import (
	"errors"
	"testing"
	"time"

	"skema/internal/item"
)

type fakeSource struct {
	items []item.TimedItem
	err   error
}

func (f *fakeSource) Items(from, to time.Time) ([]item.TimedItem, error) {
	return f.items, f.err
}

func (f *fakeSource) Files() []string { return nil }

func TestCompositeMergesAndDeduplicates(t *testing.T) {
	due := time.Date(2025, 9, 22, 8, 0, 0, 0, time.UTC)
	a := &fakeSource{items: []item.TimedItem{
		{ID: "x", Title: "From A", DueUTC: due},
		{ID: "y", DueUTC: due},
	}}
	b := &fakeSource{items: []item.TimedItem{
		{ID: "x", Title: "Duplicate from B", DueUTC: due},
		{ID: "z", DueUTC: due},
	}}

	c := NewComposite(a, b)
	items, err := c.Items(due, due.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Items error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Got %d items, want 3", len(items))
	}
	for _, it := range items {
		if it.ID == "x" && it.Title != "From A" {
			t.Errorf("Dedup should keep the first source's item, got %q", it.Title)
		}
	}
}

func TestCompositeSurvivesFailingSource(t *testing.T) {
	due := time.Date(2025, 9, 22, 8, 0, 0, 0, time.UTC)
	broken := &fakeSource{err: errors.New("corrupt file")}
	healthy := &fakeSource{items: []item.TimedItem{{ID: "ok", DueUTC: due}}}

	c := NewComposite(broken, healthy)
	items, err := c.Items(due, due.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Composite should absorb source errors, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "ok" {
		t.Errorf("Items = %+v, want the healthy source's item", items)
	}
}

func TestCompositeDeterministicOrder(t *testing.T) {
	early := time.Date(2025, 9, 22, 8, 0, 0, 0, time.UTC)
	late := early.Add(4 * time.Hour)
	src := &fakeSource{items: []item.TimedItem{
		{ID: "b", DueUTC: late},
		{ID: "a", DueUTC: early},
		{ID: "c", DueUTC: late},
	}}

	items, err := NewComposite(src).Items(early, late.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Items error: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("items[%d] = %s, want %s", i, items[i].ID, id)
		}
	}
}
