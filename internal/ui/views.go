package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"skema/internal/timegrid"
)

func (m *Model) viewHelp() string {
	key := func(action string) string {
		if k, ok := m.config.KeyBindings[action]; ok {
			return k
		}
		return "?"
	}

	help := []string{
		m.styles.Header.Render("Skema Help"),
		"",
		m.styles.Normal.Render("Navigation:"),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Next day", key("next_day"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Previous day", key("prev_day"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Next week", key("next_week"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Previous week", key("prev_week"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Go to today", key("today"))),
		"",
		m.styles.Normal.Render("Actions:"),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Toggle day/week view", key("view"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Cycle grid range", key("zoom"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Refresh items", key("refresh"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Toggle help", key("help"))),
		m.styles.Help.Render(fmt.Sprintf("  %s       - Quit", key("quit"))),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

// renderDayDetail lists the selected day's items in start order, with
// long titles wrapped to the pane width.
func (m *Model) renderDayDetail(day time.Time, out timegrid.Output, width int) string {
	if width < 16 {
		width = 16
	}
	inner := width - 4 // border and padding

	var lines []string
	lines = append(lines, m.styles.Header.Render(day.Format("Monday, Jan 2")))
	lines = append(lines, "")

	for _, it := range out.AllDay {
		lines = append(lines, m.styles.AllDay.Render("all day"))
		lines = append(lines, wrapIndent(it.Title, inner))
	}

	for _, p := range out.Positioned {
		when := fmt.Sprintf("%s - %s", p.StartTime, p.EndTime)
		lines = append(lines, m.styles.itemStyle(p.TimedItem).Render(when))
		text := p.Title
		if p.Subject != "" {
			text += " (" + p.Subject + ")"
		}
		lines = append(lines, wrapIndent(text, inner))
	}

	if len(out.AllDay) == 0 && len(out.Positioned) == 0 {
		lines = append(lines, m.styles.Help.Render("Nothing scheduled"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(width - 2).Render(body)
}

func wrapIndent(s string, width int) string {
	wrapped := wordwrap.String(s, width-2)
	parts := strings.Split(wrapped, "\n")
	for i, p := range parts {
		parts[i] = "  " + p
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | %s | Items: %d",
		m.selectedDate.Format(m.config.DateFormat),
		m.gridRangeLabel(),
		len(m.items))

	right := "? for help | q to quit "

	if m.message != "" {
		right = m.styles.Message.Render(m.message) + " "
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	middle := strings.Repeat(" ", width)

	return m.styles.Help.Render(left + middle + right)
}

func (m *Model) gridRangeLabel() string {
	return fmt.Sprintf("%02d:00-%02d:00", m.gridStartHour, m.gridEndHour)
}
