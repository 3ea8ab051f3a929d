package timegrid

// Project maps a span onto the vertical axis of a fixed-height hour grid:
// top is the pixel distance from the grid's first hour mark, height the
// span's pixel extent. Negative values indicate a caller error (span
// outside the grid, or zero/negative duration); no clamping is done here,
// callers are expected to pre-filter.
func Project(s Span, gridStartHour int, pixelsPerHour float64) (top, height float64) {
	top = float64(s.StartMin-gridStartHour*60) / 60 * pixelsPerHour
	height = float64(s.EndMin-s.StartMin) / 60 * pixelsPerHour
	return top, height
}

// HorizontalSlot maps a column assignment onto the horizontal axis as
// percentages of the day column's width. Any visual gutter between lanes
// is a rendering choice left to the caller.
func HorizontalSlot(columnIndex, totalColumns int) (leftPercent, widthPercent float64) {
	widthPercent = 100 / float64(totalColumns)
	leftPercent = widthPercent * float64(columnIndex)
	return leftPercent, widthPercent
}
