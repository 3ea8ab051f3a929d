package ui

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"skema/internal/item"
)

type Styles struct {
	Normal    lipgloss.Style
	Selected  lipgloss.Style
	Today     lipgloss.Style
	Header    lipgloss.Style
	AllDay    lipgloss.Style
	Task      lipgloss.Style
	Todo      lipgloss.Style
	Event     lipgloss.Style
	NowMarker lipgloss.Style
	Help      lipgloss.Style
	Message   lipgloss.Style
	Border    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(252)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(235)).
			Background(lipgloss.ANSIColor(220)).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(220)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true),
		AllDay: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(235)).
			Background(lipgloss.ANSIColor(109)),
		Task: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(235)).
			Background(lipgloss.ANSIColor(75)),
		Todo: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(235)).
			Background(lipgloss.ANSIColor(114)),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(235)).
			Background(lipgloss.ANSIColor(176)),
		NowMarker: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(235)).
			Background(lipgloss.ANSIColor(196)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(243)),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(220)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.ANSIColor(240)),
	}
}

// itemStyle picks a block style for an item. Items carrying a usable hex
// color (a project color from the task file) get that as background with
// a readable foreground; everything else falls back to its kind's style.
func (s Styles) itemStyle(it item.TimedItem) lipgloss.Style {
	if it.Color != "" {
		if c, err := colorful.Hex(it.Color); err == nil {
			fg := lipgloss.ANSIColor(0)
			if _, _, l := c.Hsl(); l < 0.5 {
				fg = lipgloss.ANSIColor(15)
			}
			return lipgloss.NewStyle().Background(c).Foreground(fg)
		}
	}
	switch it.Kind {
	case item.KindTask:
		return s.Task
	case item.KindTodo:
		return s.Todo
	default:
		return s.Event
	}
}
