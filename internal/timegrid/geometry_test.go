package timegrid

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProject(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		// 09:00-10:30 at 80px/h in a grid starting at 06:00.
		top, height := Project(span("A", 540, 630), 6, 80)
		if !almostEqual(top, 240) {
			t.Errorf("top = %v, want 240", top)
		}
		if !almostEqual(height, 120) {
			t.Errorf("height = %v, want 120", height)
		}
	})

	t.Run("SubHourPrecision", func(t *testing.T) {
		top, height := Project(span("A", 555, 585), 9, 60)
		if !almostEqual(top, 15) || !almostEqual(height, 30) {
			t.Errorf("Got top=%v height=%v, want 15/30", top, height)
		}
	})

	t.Run("NoClamping", func(t *testing.T) {
		// Items before the grid start project negative; the caller is
		// responsible for filtering them out.
		top, _ := Project(span("A", 300, 360), 6, 80)
		if top >= 0 {
			t.Errorf("top = %v, expected negative for out-of-grid span", top)
		}
	})
}

func TestHorizontalSlot(t *testing.T) {
	tests := []struct {
		column, total       int
		wantLeft, wantWidth float64
	}{
		{0, 1, 0, 100},
		{0, 2, 0, 50},
		{1, 2, 50, 50},
		{2, 4, 50, 25},
		{3, 4, 75, 25},
	}

	for _, tt := range tests {
		left, width := HorizontalSlot(tt.column, tt.total)
		if !almostEqual(left, tt.wantLeft) || !almostEqual(width, tt.wantWidth) {
			t.Errorf("HorizontalSlot(%d, %d) = %v%%/%v%%, want %v%%/%v%%",
				tt.column, tt.total, left, width, tt.wantLeft, tt.wantWidth)
		}
	}
}
