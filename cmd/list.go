package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"skema/internal/timegrid"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's items and exit",
	Long:  `List all items for today in a simple text format and exit.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	source := buildSource()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	items, err := source.Items(today, today.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("error loading items: %w", err)
	}

	// The full day so nothing scheduled outside the configured window is
	// dropped from the listing.
	out, err := timegrid.Layout(timegrid.Input{
		Items:         items,
		Day:           now,
		GridStartHour: 0,
		GridEndHour:   23,
		PixelsPerHour: 1,
		OffsetMinutes: cfg.UTCOffsetMinutes,
		Now:           now,
	})
	if err != nil {
		return fmt.Errorf("error laying out items: %w", err)
	}

	fmt.Printf("Items for %s:\n", now.Format(cfg.DateFormat))
	if len(out.AllDay) == 0 && len(out.Positioned) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	for _, it := range out.AllDay {
		fmt.Printf("  all day       %s\n", it.Title)
	}
	for _, p := range out.Positioned {
		label := p.Title
		if p.Subject != "" {
			label += " (" + p.Subject + ")"
		}
		if p.TotalColumns > 1 {
			label += fmt.Sprintf(" [%d/%d]", p.ColumnIndex+1, p.TotalColumns)
		}
		fmt.Printf("  %s - %s %s\n", p.StartTime, p.EndTime, label)
	}
	if out.NowOffsetHours != nil {
		fmt.Printf("  now: %s\n", now.Format(cfg.TimeFormat))
	}
	return nil
}
