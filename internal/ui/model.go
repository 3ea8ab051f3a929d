package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skema/internal/config"
	"skema/internal/item"
	"skema/internal/store"
	"skema/internal/timegrid"
)

type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
	ViewHelp
)

type Model struct {
	// Core components
	config  *config.Config
	source  store.Source
	watcher *store.FileWatcher
	changes chan string

	// View state
	mode         ViewMode
	prevMode     ViewMode
	selectedDate time.Time
	items        []item.TimedItem
	now          time.Time

	// Grid state
	gridStartHour int
	gridEndHour   int
	rowsPerHour   int

	// UI state
	width   int
	height  int
	message string

	styles Styles
}

type tickMsg time.Time

type itemsMsg struct {
	items []item.TimedItem
	err   error
}

type fileChangedMsg string

func NewModel(cfg *config.Config, source store.Source) *Model {
	now := time.Now()

	m := &Model{
		config:        cfg,
		source:        source,
		changes:       make(chan string, 8),
		mode:          ViewWeek,
		selectedDate:  now,
		now:           now,
		gridStartHour: cfg.GridStartHour,
		gridEndHour:   cfg.GridEndHour,
		rowsPerHour:   cfg.RowsPerHour,
		styles:        DefaultStyles(),
	}
	if cfg.StartupView == "day" {
		m.mode = ViewDay
	}

	if cfg.AutoRefresh {
		watcher, err := store.NewFileWatcher(func(path string) {
			select {
			case m.changes <- path:
			default:
			}
		})
		if err == nil {
			m.watcher = watcher
			for _, file := range source.Files() {
				watcher.AddFile(file)
			}
		}
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadItems, m.tick(), m.waitForChange())
}

// tick drives the now-marker; geometry is cheap enough to recompute every
// minute.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if path, ok := <-m.changes; ok {
			return fileChangedMsg(path)
		}
		return nil
	}
}

// loadItems fetches a window generously wider than the visible week so
// day switches do not need a reload.
func (m *Model) loadItems() tea.Msg {
	from := m.weekStart().AddDate(0, 0, -7)
	to := m.weekStart().AddDate(0, 0, 14)
	items, err := m.source.Items(from, to)
	return itemsMsg{items: items, err: err}
}

func (m *Model) weekStart() time.Time {
	d := time.Date(m.selectedDate.Year(), m.selectedDate.Month(), m.selectedDate.Day(),
		0, 0, 0, 0, m.selectedDate.Location())
	for d.Weekday() != m.config.WeekStartDay {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.now = time.Time(msg)
		return m, m.tick()

	case itemsMsg:
		if msg.err != nil {
			m.message = "load failed: " + msg.err.Error()
		} else {
			m.items = msg.items
			m.message = ""
		}

	case fileChangedMsg:
		return m, tea.Batch(m.loadItems, m.waitForChange())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ViewHelp {
		m.mode = m.prevMode
		return m, nil
	}

	switch m.action(msg.String()) {
	case "quit":
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case "help":
		m.prevMode = m.mode
		m.mode = ViewHelp

	case "today":
		m.selectedDate = time.Now()
		return m, m.loadItems

	case "refresh":
		return m, m.loadItems

	case "next_day":
		m.selectedDate = m.selectedDate.AddDate(0, 0, 1)
		return m, m.loadItems

	case "prev_day":
		m.selectedDate = m.selectedDate.AddDate(0, 0, -1)
		return m, m.loadItems

	case "next_week":
		m.selectedDate = m.selectedDate.AddDate(0, 0, 7)
		return m, m.loadItems

	case "prev_week":
		m.selectedDate = m.selectedDate.AddDate(0, 0, -7)
		return m, m.loadItems

	case "zoom":
		m.cycleGridRange()

	case "view":
		if m.mode == ViewDay {
			m.mode = ViewWeek
		} else {
			m.mode = ViewDay
		}
	}

	return m, nil
}

// action maps a pressed key back to its configured action name.
func (m *Model) action(key string) string {
	for action, bound := range m.config.KeyBindings {
		if bound == key {
			return action
		}
	}
	return ""
}

// cycleGridRange steps through the named presets; a custom range from the
// config joins the cycle at its closest preset.
func (m *Model) cycleGridRange() {
	idx := -1
	for i, p := range timegrid.Presets {
		if p.StartHour == m.gridStartHour && p.EndHour == m.gridEndHour {
			idx = i
			break
		}
	}
	next := timegrid.Presets[(idx+1)%len(timegrid.Presets)]
	m.gridStartHour = next.StartHour
	m.gridEndHour = next.EndHour
	m.message = "grid: " + next.Name
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.mode == ViewHelp {
		return m.viewHelp()
	}
	return m.viewTimetable()
}
