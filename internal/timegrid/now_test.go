package timegrid

import (
	"testing"
	"time"
)

func clock(hour, min int) time.Time {
	return time.Date(2025, 9, 22, hour, min, 0, 0, time.UTC)
}

func TestNowOffset(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		start, end int
		want       float64
		visible    bool
	}{
		{"GridStart", clock(6, 0), 6, 18, 0, true},
		{"MidMorning", clock(9, 30), 6, 18, 3.5, true},
		{"LastHourStillVisible", clock(18, 45), 6, 18, 12.75, true},
		{"BeforeWindow", clock(5, 59), 6, 18, 0, false},
		{"AfterWindow", clock(19, 0), 6, 18, 0, false},

		// Wrapping window 22:00..03:00.
		{"WrapBeforeMidnight", clock(23, 30), 22, 3, 1.5, true},
		{"WrapPastMidnight", clock(1, 15), 22, 3, 3.25, true},
		{"WrapEndHourVisible", clock(3, 59), 22, 3, 5.983333333333333, true},
		{"WrapDaytimeInvisible", clock(10, 0), 22, 3, 0, false},
		{"WrapGapInvisible", clock(12, 0), 22, 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, visible := NowOffset(tt.now, tt.start, tt.end)
			if visible != tt.visible {
				t.Fatalf("visible = %v, want %v", visible, tt.visible)
			}
			if visible && !almostEqual(got, tt.want) {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNowOffsetFullDayAlwaysVisible(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		if _, visible := NowOffset(clock(hour, 0), 0, 23); !visible {
			t.Errorf("Hour %d invisible in a full-day window", hour)
		}
	}
}
