package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"skema/internal/timegrid"
)

// timeGutter is the width of the hour-label column, "06:00 ".
const timeGutter = 6

// viewTimetable renders the day or week grid: an hour-label gutter on the
// left and one column per visible day, each day split into lanes per the
// engine's column assignments.
func (m *Model) viewTimetable() string {
	days := m.visibleDays()

	gridWidth := m.width
	if m.mode == ViewDay {
		// Day view keeps a detail pane on the right.
		gridWidth = m.width * 2 / 3
		if gridWidth < 40 {
			gridWidth = 40
		}
	}

	colWidth := (gridWidth - timeGutter - len(days)) / len(days)
	if colWidth < 10 {
		colWidth = 10
	}

	outs := make([]timegrid.Output, len(days))
	for i, d := range days {
		out, err := timegrid.Layout(timegrid.Input{
			Items:         m.items,
			Day:           d,
			GridStartHour: m.gridStartHour,
			GridEndHour:   m.gridEndHour,
			PixelsPerHour: float64(m.rowsPerHour),
			OffsetMinutes: m.config.UTCOffsetMinutes,
			Now:           m.now,
		})
		if err != nil {
			// Only an invalid grid configuration lands here.
			return m.styles.Message.Render("layout failed: " + err.Error())
		}
		outs[i] = out
	}

	slots := outs[0].Slots
	totalRows := len(slots) * m.rowsPerHour
	maxRows := m.height - 5 // header, all-day lane, status bar
	if maxRows < m.rowsPerHour {
		maxRows = m.rowsPerHour
	}
	if totalRows > maxRows {
		totalRows = maxRows
	}

	nowRow := -1
	if outs[0].NowOffsetHours != nil && m.todayVisible(days) {
		nowRow = int(*outs[0].NowOffsetHours * float64(m.rowsPerHour))
	}

	var lines []string
	lines = append(lines, m.renderDayHeaders(days, colWidth))
	lines = append(lines, m.renderAllDayLane(days, outs, colWidth))

	dayLines := make([][]string, len(days))
	for i := range days {
		dayLines[i] = m.renderDayColumn(outs[i], colWidth, totalRows)
	}

	for r := 0; r < totalRows; r++ {
		labelStyle := m.styles.Help
		if r == nowRow {
			labelStyle = m.styles.NowMarker
		}
		row := labelStyle.Render(m.timeLabel(slots, r)) + " "
		for i := range days {
			if i > 0 {
				row += " "
			}
			row += dayLines[i][r]
		}
		lines = append(lines, row)
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if m.mode == ViewDay {
		detail := m.renderDayDetail(days[0], outs[0], m.width-gridWidth-2)
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", detail)
	}

	return lipgloss.JoinVertical(lipgloss.Left, grid, m.renderStatusBar())
}

func (m *Model) visibleDays() []time.Time {
	if m.mode == ViewDay {
		return []time.Time{m.selectedDate}
	}
	start := m.weekStart()
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func (m *Model) todayVisible(days []time.Time) bool {
	now := m.now
	for _, d := range days {
		if d.Year() == now.Year() && d.YearDay() == now.YearDay() {
			return true
		}
	}
	return false
}

func (m *Model) renderDayHeaders(days []time.Time, colWidth int) string {
	row := strings.Repeat(" ", timeGutter)
	for i, d := range days {
		if i > 0 {
			row += " "
		}
		label := truncPad(d.Format("Mon Jan 2"), colWidth)
		style := m.styles.Header
		if d.Year() == m.now.Year() && d.YearDay() == m.now.YearDay() {
			style = m.styles.Today
		}
		row += style.Render(label)
	}
	return row
}

// renderAllDayLane shows the caller-owned all-day lane: one fixed-height
// line per visible window, never packed into columns.
func (m *Model) renderAllDayLane(days []time.Time, outs []timegrid.Output, colWidth int) string {
	row := strings.Repeat(" ", timeGutter)
	for i := range days {
		if i > 0 {
			row += " "
		}
		if len(outs[i].AllDay) == 0 {
			row += strings.Repeat(" ", colWidth)
			continue
		}
		titles := make([]string, 0, len(outs[i].AllDay))
		for _, it := range outs[i].AllDay {
			titles = append(titles, it.Title)
		}
		row += m.styles.AllDay.Render(truncPad(strings.Join(titles, " · "), colWidth))
	}
	return row
}

// renderDayColumn paints one day's positioned items into totalRows lines
// of exactly width cells. Lane geometry comes straight from the engine:
// Left/Width percentages are scaled to the column width, with one cell
// dropped as a gutter when an item shares its cluster.
func (m *Model) renderDayColumn(out timegrid.Output, width, totalRows int) []string {
	type seg struct {
		x, w  int
		text  string
		style lipgloss.Style
	}
	rows := make([][]seg, totalRows)

	for _, p := range out.Positioned {
		startRow := int(p.Top + 0.5)
		span := int(p.Height + 0.5)
		if span < 1 {
			span = 1
		}
		x := int(p.Left / 100 * float64(width))
		w := int(p.Width / 100 * float64(width))
		if p.TotalColumns > 1 && w > 1 {
			w--
		}
		if w < 1 {
			w = 1
		}
		style := m.styles.itemStyle(p.TimedItem)

		for r := startRow; r < startRow+span && r < totalRows; r++ {
			if r < 0 {
				continue
			}
			text := strings.Repeat(" ", w)
			if r == startRow {
				text = truncPad(p.Title, w)
			}
			rows[r] = append(rows[r], seg{x: x, w: w, text: text, style: style})
		}
	}

	lines := make([]string, totalRows)
	for r, segs := range rows {
		sort.Slice(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

		var b strings.Builder
		cur := 0
		for _, s := range segs {
			x, w := s.x, s.w
			if x < cur {
				x = cur
			}
			if x+w > width {
				w = width - x
			}
			if w <= 0 {
				continue
			}
			if x > cur {
				b.WriteString(strings.Repeat(" ", x-cur))
			}
			b.WriteString(s.style.Render(truncPad(strings.TrimRight(s.text, " "), w)))
			cur = x + w
		}
		if cur < width {
			b.WriteString(strings.Repeat(" ", width-cur))
		}
		lines[r] = b.String()
	}
	return lines
}

// timeLabel derives the sub-hour label for a grid row from the hour slots,
// e.g. row 7 at two rows per hour inside a 06:00 window is "09:30".
func (m *Model) timeLabel(slots []string, row int) string {
	slot := slots[row/m.rowsPerHour]
	min := (row % m.rowsPerHour) * (60 / m.rowsPerHour)
	return fmt.Sprintf("%s%02d", slot[:3], min)
}

func truncPad(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		if w <= 1 {
			return string(r[:w])
		}
		return string(r[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(r))
}
