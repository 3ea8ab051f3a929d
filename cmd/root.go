package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"skema/internal/config"
	"skema/internal/log"
	"skema/internal/store"
	"skema/internal/ui"
)

var (
	taskFiles []string
	icsFiles  []string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "skema",
	Short: "A terminal timetable for tasks, todos and calendar events",
	Long: `Skema renders tasks, todos and calendar events as a week or day
timetable in the terminal, with overlapping items packed side by side.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringSliceVarP(&taskFiles, "file", "f", []string{}, "Task file(s) to use (can be specified multiple times)")
	rootCmd.PersistentFlags().StringSliceVar(&icsFiles, "ics", []string{}, "iCalendar file(s) to use (can be specified multiple times)")
}

func initConfig() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
}

// buildSource merges the configured task and calendar files into one
// source. Command-line files override the config's lists.
func buildSource() store.Source {
	yamlPaths := cfg.TaskFiles
	if len(taskFiles) > 0 {
		yamlPaths = taskFiles
	}
	icsPaths := cfg.ICSFiles
	if len(icsFiles) > 0 {
		icsPaths = icsFiles
	}

	composite := store.NewComposite()
	if len(yamlPaths) > 0 {
		composite.Add(store.NewYAMLFiles(yamlPaths))
	}
	if len(icsPaths) > 0 {
		composite.Add(store.NewICSFiles(icsPaths, cfg.UTCOffsetMinutes))
	}
	return composite
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Writes to stderr would tear the alternate screen; log to a file
	// when asked for one, otherwise drop everything.
	if path := os.Getenv("SKEMA_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			log.SetOutput(f)
			log.SetLevel(log.LevelDebug)
		}
	} else if f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
		log.SetOutput(f)
	}

	source := buildSource()
	if len(source.Files()) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no task or calendar files configured\n")
		fmt.Fprintf(os.Stderr, "Add 'set task_files ~/path/to/items.yaml' to your skemarc or pass --file\n")
	}

	model := ui.NewModel(cfg, source)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
