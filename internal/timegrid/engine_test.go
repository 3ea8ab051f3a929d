package timegrid

import (
	"errors"
	"testing"
	"time"

	"skema/internal/item"
)

// All layout tests run in UTC+2 on 2025-09-22 unless noted. Due dates are
// chosen mid-UTC-day so they bucket to the local day regardless of offset.
var (
	testDay = time.Date(2025, 9, 22, 12, 0, 0, 0, time.UTC)
	testDue = time.Date(2025, 9, 22, 8, 0, 0, 0, time.UTC)
)

func timed(id, start, end string) item.TimedItem {
	return item.TimedItem{ID: id, Kind: item.KindTask, StartTime: start, EndTime: end, DueUTC: testDue}
}

func layoutInput(items ...item.TimedItem) Input {
	return Input{
		Items:         items,
		Day:           testDay,
		GridStartHour: 6,
		GridEndHour:   18,
		PixelsPerHour: 80,
		OffsetMinutes: 120,
		Now:           time.Date(2025, 9, 22, 7, 30, 0, 0, time.UTC), // 09:30 local
	}
}

func TestLayoutScenario(t *testing.T) {
	// A 09:00-10:00 and B 09:30-11:00 overlap; C 12:00-13:00 stands alone.
	out, err := Layout(layoutInput(
		timed("A", "09:00", "10:00"),
		timed("B", "09:30", "11:00"),
		timed("C", "12:00", "13:00"),
	))
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(out.Positioned) != 3 {
		t.Fatalf("Positioned %d items, want 3", len(out.Positioned))
	}

	byID := make(map[string]Positioned)
	for _, p := range out.Positioned {
		byID[p.ID] = p
	}

	if byID["A"].ColumnIndex != 0 || byID["A"].TotalColumns != 2 {
		t.Errorf("A column %d/%d, want 0/2", byID["A"].ColumnIndex, byID["A"].TotalColumns)
	}
	if byID["B"].ColumnIndex != 1 || byID["B"].TotalColumns != 2 {
		t.Errorf("B column %d/%d, want 1/2", byID["B"].ColumnIndex, byID["B"].TotalColumns)
	}
	if byID["C"].ColumnIndex != 0 || byID["C"].TotalColumns != 1 {
		t.Errorf("C column %d/%d, want 0/1", byID["C"].ColumnIndex, byID["C"].TotalColumns)
	}

	// 09:00 is three hours past the 06:00 grid start at 80px/h.
	if !almostEqual(byID["A"].Top, 240) || !almostEqual(byID["A"].Height, 80) {
		t.Errorf("A geometry top=%v height=%v, want 240/80", byID["A"].Top, byID["A"].Height)
	}
	if !almostEqual(byID["B"].Left, 50) || !almostEqual(byID["B"].Width, 50) {
		t.Errorf("B horizontal %v%%/%v%%, want 50/50", byID["B"].Left, byID["B"].Width)
	}
	if !almostEqual(byID["C"].Width, 100) {
		t.Errorf("C width %v%%, want 100", byID["C"].Width)
	}

	if out.NowOffsetHours == nil {
		t.Fatal("Now marker should be visible at 09:30 local")
	}
	if !almostEqual(*out.NowOffsetHours, 3.5) {
		t.Errorf("Now offset %v, want 3.5", *out.NowOffsetHours)
	}
}

func TestLayoutBridging(t *testing.T) {
	// A and C never overlap, but B chains them into one cluster; the
	// cluster still needs only two columns.
	out, err := Layout(layoutInput(
		timed("A", "09:00", "10:00"),
		timed("B", "09:50", "11:00"),
		timed("C", "10:50", "12:00"),
	))
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}

	byID := make(map[string]Positioned)
	for _, p := range out.Positioned {
		byID[p.ID] = p
	}
	for _, id := range []string{"A", "B", "C"} {
		if byID[id].TotalColumns != 2 {
			t.Errorf("%s TotalColumns = %d, want 2", id, byID[id].TotalColumns)
		}
	}
	if byID["A"].ColumnIndex == byID["B"].ColumnIndex {
		t.Error("A and B overlap but share a column")
	}
	if byID["B"].ColumnIndex == byID["C"].ColumnIndex {
		t.Error("B and C overlap but share a column")
	}
}

func TestLayoutNoSameColumnOverlap(t *testing.T) {
	out, err := Layout(layoutInput(
		timed("A", "08:00", "12:00"),
		timed("B", "08:30", "09:30"),
		timed("C", "09:00", "10:30"),
		timed("D", "10:00", "11:00"),
		timed("E", "11:30", "13:00"),
		timed("F", "14:00", "15:00"),
	))
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}

	for i := 0; i < len(out.Positioned); i++ {
		for j := i + 1; j < len(out.Positioned); j++ {
			a, b := out.Positioned[i], out.Positioned[j]
			if a.ColumnIndex != b.ColumnIndex || a.TotalColumns != b.TotalColumns {
				continue
			}
			aStart, _ := ToMinutes(a.StartTime)
			aEnd, _ := ToMinutes(a.EndTime)
			bStart, _ := ToMinutes(b.StartTime)
			bEnd, _ := ToMinutes(b.EndTime)
			if Overlaps(aStart, aEnd, bStart, bEnd) {
				t.Errorf("%s and %s overlap in column %d", a.ID, b.ID, a.ColumnIndex)
			}
		}
	}
}

func TestLayoutWrappingWindow(t *testing.T) {
	in := layoutInput(
		timed("evening", "23:00", "23:45"),
		timed("late", "01:00", "02:00"),
	)
	in.GridStartHour = 6
	in.GridEndHour = 2
	in.Now = time.Date(2025, 9, 22, 21, 30, 0, 0, time.UTC) // 23:30 local

	out, err := Layout(in)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(out.Slots) != 21 {
		t.Errorf("Slots = %d, want 21", len(out.Slots))
	}

	byID := make(map[string]Positioned)
	for _, p := range out.Positioned {
		byID[p.ID] = p
	}
	// 23:00 is 17 hours past the grid start, 01:00 is 19 hours past.
	if !almostEqual(byID["evening"].Top, 17*80) {
		t.Errorf("Evening top = %v, want %v", byID["evening"].Top, 17.0*80)
	}
	if !almostEqual(byID["late"].Top, 19*80) {
		t.Errorf("Past-midnight top = %v, want %v", byID["late"].Top, 19.0*80)
	}

	if out.NowOffsetHours == nil || !almostEqual(*out.NowOffsetHours, 17.5) {
		t.Errorf("Now offset = %v, want 17.5", out.NowOffsetHours)
	}
}

func TestLayoutSkipsBadItems(t *testing.T) {
	in := layoutInput(
		timed("good", "09:00", "10:00"),
		timed("malformed", "9am", "10:00"),
		timed("backwards", "11:00", "10:00"),
		timed("early", "05:00", "05:30"), // before the 06:00 grid start
	)

	out, err := Layout(in)
	if err != nil {
		t.Fatalf("Layout should not fail on bad items: %v", err)
	}
	if len(out.Positioned) != 1 || out.Positioned[0].ID != "good" {
		t.Errorf("Positioned = %v, want only the good item", out.Positioned)
	}
}

func TestLayoutAllDayLane(t *testing.T) {
	allDay := item.TimedItem{ID: "holiday", Kind: item.KindEvent, AllDay: true, DueUTC: testDue}
	out, err := Layout(layoutInput(allDay, timed("A", "09:00", "10:00")))
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(out.AllDay) != 1 || out.AllDay[0].ID != "holiday" {
		t.Errorf("AllDay = %v, want [holiday]", out.AllDay)
	}
	// All-day items never receive geometry.
	for _, p := range out.Positioned {
		if p.ID == "holiday" {
			t.Error("All-day item was positioned")
		}
	}
}

func TestLayoutResolvedTimesWrittenBack(t *testing.T) {
	noEnd := item.TimedItem{ID: "derive", StartTime: "14:00", DueUTC: testDue}
	out, err := Layout(layoutInput(noEnd))
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(out.Positioned) != 1 {
		t.Fatalf("Positioned %d items, want 1", len(out.Positioned))
	}
	p := out.Positioned[0]
	if p.StartTime != "14:00" || p.EndTime != "15:00" {
		t.Errorf("Resolved range %s..%s, want 14:00..15:00", p.StartTime, p.EndTime)
	}
}

func TestLayoutInvalidGridFails(t *testing.T) {
	in := layoutInput(timed("A", "09:00", "10:00"))
	in.GridEndHour = 24
	if _, err := Layout(in); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Error = %v, want ErrInvalidRange", err)
	}

	in = layoutInput()
	in.PixelsPerHour = 0
	if _, err := Layout(in); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Zero pixels per hour: error = %v, want ErrInvalidRange", err)
	}
}

func TestLayoutNowHiddenOutsideWindow(t *testing.T) {
	in := layoutInput()
	in.Now = time.Date(2025, 9, 22, 1, 0, 0, 0, time.UTC) // 03:00 local
	out, err := Layout(in)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if out.NowOffsetHours != nil {
		t.Errorf("Now marker should be hidden, got %v", *out.NowOffsetHours)
	}
}
