package timegrid

import "time"

// NowOffset computes the current time's distance from the top of the grid
// in hours, for the live time marker. now must already be in the viewer's
// local frame; only its wall clock is read.
//
// For a window that wraps past midnight (gridEndHour < gridStartHour) the
// current hour is visible iff it is at or after the start hour or at or
// before the end hour; hours past midnight land (24 - gridStartHour)
// hours down the grid. The second return value is false when the current
// time falls outside the window, in which case callers suppress the
// marker entirely.
func NowOffset(now time.Time, gridStartHour, gridEndHour int) (float64, bool) {
	hour := now.Hour()
	wraps := gridEndHour < gridStartHour

	if wraps {
		if hour < gridStartHour && hour > gridEndHour {
			return 0, false
		}
	} else {
		if hour < gridStartHour || hour > gridEndHour {
			return 0, false
		}
	}

	var hours float64
	if wraps && hour <= gridEndHour {
		hours = float64(24-gridStartHour) + float64(hour)
	} else {
		hours = float64(hour - gridStartHour)
	}
	return hours + float64(now.Minute())/60, true
}
