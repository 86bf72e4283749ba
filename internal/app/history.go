package app

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/confprune/confprune/internal/store"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show recent scans",
		Long: `List recent scans from the history database with per-category counts,
newest first.`,
		Example: `  confprune history
  confprune history --limit 5`,
		RunE: runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of scans to show")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}
	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	scans, err := db.ListScans(historyLimit)
	if err != nil {
		return err
	}
	if len(scans) == 0 {
		fmt.Println("No scans recorded yet. Run 'confprune scan' first.")
		return nil
	}

	for _, sc := range scans {
		counts, err := db.CategoryCounts(sc.ID)
		if err != nil {
			return err
		}
		fmt.Printf("#%d  %s  %d folders (%d orphaned, %d kept)\n",
			sc.ID,
			humanize.Time(sc.StartedAt),
			sc.Total,
			counts["orphaned"],
			counts["kept"],
		)
	}

	return nil
}
