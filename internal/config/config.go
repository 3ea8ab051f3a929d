package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"skema/internal/timegrid"
)

type Config struct {
	// Item sources
	TaskFiles []string
	ICSFiles  []string

	// Grid settings
	GridRange     string // preset name, or "custom" when hours were set directly
	GridStartHour int
	GridEndHour   int
	RowsPerHour   int

	// UTCOffsetMinutes localizes item due dates; defaults to the host zone.
	UTCOffsetMinutes int

	// Display settings
	WeekStartDay time.Weekday
	TimeFormat   string
	DateFormat   string
	StartupView  string // "day" or "week"

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string

	// Behavior settings
	AutoRefresh bool
	RefreshRate time.Duration
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	_, hostOffset := time.Now().Zone()

	return &Config{
		TaskFiles: []string{filepath.Join(home, ".skema", "items.yaml")},
		ICSFiles:  []string{},

		GridRange:        "work",
		GridStartHour:    6,
		GridEndHour:      18,
		RowsPerHour:      2,
		UTCOffsetMinutes: hostOffset / 60,

		WeekStartDay: time.Monday,
		TimeFormat:   "15:04",
		DateFormat:   "Jan 2, 2006",
		StartupView:  "week",

		Colors: map[string]string{
			"normal":   "default",
			"today":    "yellow",
			"selected": "reverse",
			"task":     "blue",
			"todo":     "green",
			"event":    "magenta",
			"now":      "red",
			"header":   "bold",
		},

		KeyBindings: map[string]string{
			"quit":      "q",
			"help":      "?",
			"today":     "o",
			"refresh":   "r",
			"next_day":  "l",
			"prev_day":  "h",
			"next_week": "J",
			"prev_week": "K",
			"zoom":      "z",
			"view":      "w",
		},

		AutoRefresh: true,
		RefreshRate: time.Minute,
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	configPaths := []string{
		os.Getenv("SKEMA_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "skema", "skemarc"),
		filepath.Join(os.Getenv("HOME"), ".config", "skema", "skemarc"),
		filepath.Join(os.Getenv("HOME"), ".skemarc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

func (c *Config) parseLine(line string) error {
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[2]] = matches[1]
		return nil
	}
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}
	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	value = strings.Trim(value, `"'`)

	switch name {
	case "task_file", "task_files":
		c.TaskFiles = splitFileList(value)

	case "ics_file", "ics_files":
		c.ICSFiles = splitFileList(value)

	case "grid_range":
		return c.setGridRange(value)

	case "rows_per_hour":
		n, err := strconv.Atoi(value)
		if err != nil || (n != 1 && n != 2 && n != 4) {
			return fmt.Errorf("invalid rows_per_hour (1, 2 or 4): %s", value)
		}
		c.RowsPerHour = n

	case "utc_offset":
		offset, err := parseUTCOffset(value)
		if err != nil {
			return err
		}
		c.UTCOffsetMinutes = offset

	case "week_start_day":
		switch strings.ToLower(value) {
		case "sunday", "sun", "0":
			c.WeekStartDay = time.Sunday
		case "monday", "mon", "1":
			c.WeekStartDay = time.Monday
		default:
			return fmt.Errorf("invalid week_start_day: %s", value)
		}

	case "time_format":
		c.TimeFormat = value

	case "date_format":
		c.DateFormat = value

	case "startup_view":
		if value != "day" && value != "week" {
			return fmt.Errorf("invalid startup_view (day or week): %s", value)
		}
		c.StartupView = value

	case "auto_refresh":
		c.AutoRefresh = strings.ToLower(value) == "true" || value == "1"

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		c.RefreshRate = rate

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// setGridRange accepts a preset name (work, extended, full) or an explicit
// "START-END" hour pair, where END below START wraps past midnight.
func (c *Config) setGridRange(value string) error {
	if p, ok := timegrid.Preset(value); ok {
		c.GridRange = p.Name
		c.GridStartHour = p.StartHour
		c.GridEndHour = p.EndHour
		return nil
	}

	parts := strings.SplitN(value, "-", 2)
	if len(parts) == 2 {
		start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil {
			if start < 0 || start > 23 || end < 0 || end > 23 {
				return fmt.Errorf("grid_range hours out of 0-23: %s", value)
			}
			c.GridRange = "custom"
			c.GridStartHour = start
			c.GridEndHour = end
			return nil
		}
	}
	return fmt.Errorf("invalid grid_range (preset name or START-END): %s", value)
}

// parseUTCOffset accepts minutes east of UTC ("120", "-300") or a clock
// form ("+02:00", "-05:30").
func parseUTCOffset(value string) (int, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if n < -12*60 || n > 14*60 {
			return 0, fmt.Errorf("utc_offset out of range: %s", value)
		}
		return n, nil
	}

	sign := 1
	s := value
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) == 2 {
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 == nil && err2 == nil && h <= 14 && m < 60 {
			return sign * (h*60 + m), nil
		}
	}
	return 0, fmt.Errorf("invalid utc_offset: %s", value)
}

func splitFileList(value string) []string {
	files := strings.Split(value, ",")
	for i, file := range files {
		files[i] = strings.TrimSpace(file)
		if strings.HasPrefix(files[i], "~/") {
			home, _ := os.UserHomeDir()
			files[i] = filepath.Join(home, files[i][2:])
		}
	}
	return files
}
