package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/output"
	"github.com/confprune/confprune/internal/scan"
	"github.com/confprune/confprune/internal/store"
)

var (
	scanQuiet     bool
	scanJSON      bool
	scanNoHistory bool

	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Classify application folders in your home directory",
		Long: `Scan ~/.config, ~/.local/share, and hidden home folders and classify
each one against the installed-application inventories.

Folders are processed one at a time in enumeration order, so progress is
visible throughout. The result of every scan is recorded in the history
database unless --no-history is given; 'confprune list' reads the most
recent recorded scan.`,
		Example: `  # Scan and print the category summary plus orphaned folders
  confprune scan

  # Machine-readable output
  confprune scan --json

  # Scan without recording history
  confprune scan --no-history`,
		RunE: runScan,
	}
)

func init() {
	scanCmd.Flags().BoolVar(&scanQuiet, "quiet", false, "suppress progress output")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print results as JSON")
	scanCmd.Flags().BoolVar(&scanNoHistory, "no-history", false, "skip recording this scan in the history database")

	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	startedAt := time.Now()
	dirs := scan.Enumerate(sess.home, sess.ignore)
	engine := sess.engine()
	pass := scan.NewPass(dirs, engine)

	isTTY := isatty.IsTerminal(os.Stdout.Fd())
	var progress *output.ProgressBar
	if !scanQuiet && !scanJSON && isTTY {
		progress = output.NewProgress(pass.Total(), "Classifying folders")
	}

	// One directory per step; the iterator keeps enumeration order.
	for {
		if _, ok := pass.Next(); !ok {
			break
		}
		if progress != nil {
			progress.Increment()
		}
	}
	if progress != nil {
		progress.Finish()
	}

	results := pass.Results()

	if !scanNoHistory {
		if err := recordScan(startedAt, sess.home, results); err != nil {
			// History is a convenience; a scan without it is still a scan.
			fmt.Fprintf(os.Stderr, "warning: failed to record scan history: %v\n", err)
		}
	}

	if scanJSON {
		return printScanJSON(results)
	}

	colorize := output.IsColorEnabled()
	fmt.Println()
	fmt.Print(output.RenderSummaryTable(scan.CountByCategory(results), colorize))

	var orphans []scan.Result
	for _, r := range results {
		if r.Category == classify.Orphaned {
			orphans = append(orphans, r)
		}
	}
	if len(orphans) > 0 && !scanQuiet {
		fmt.Println()
		fmt.Println("Orphaned folders:")
		fmt.Print(output.RenderResultList(orphans, colorize))
		fmt.Println()
		fmt.Println("Tip: 'confprune describe <folder>' looks up what a folder belonged to.")
	}

	return nil
}

func recordScan(startedAt time.Time, home string, results []scan.Result) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}

	db, err := store.New(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return err
	}

	rows := make([]store.ScanResult, 0, len(results))
	for _, r := range results {
		rows = append(rows, store.ScanResult{
			Path:     r.Dir.Path,
			Category: string(r.Category),
		})
	}

	_, err = db.RecordScan(startedAt, home, rows)
	return err
}

func printScanJSON(results []scan.Result) error {
	type row struct {
		Path     string `json:"path"`
		Category string `json:"category"`
	}
	rows := make([]row, 0, len(results))
	for _, r := range results {
		rows = append(rows, row{Path: r.Dir.Path, Category: string(r.Category)})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
