package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/output"
	"github.com/confprune/confprune/internal/scan"
	"github.com/confprune/confprune/internal/store"
)

var (
	listCategory string

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Show folders from the most recent scan",
		Long: `List the folders recorded by the most recent 'confprune scan',
optionally filtered to a single category.

Category names: installed-package, installed-executable,
maybe-installed-partial, installed-flatpak, installed-desktop-file,
installed-appimage, orphaned, kept.`,
		Example: `  # Everything from the last scan
  confprune list

  # Only orphaned folders
  confprune list --category orphaned`,
		RunE: runList,
	}
)

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "show only this category")
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listCategory != "" && !validCategory(listCategory) {
		return fmt.Errorf("unknown category %q", listCategory)
	}

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

	latest, err := db.LatestScan()
	if err != nil {
		return err
	}
	if latest == nil {
		fmt.Println("No scans recorded yet. Run 'confprune scan' first.")
		return nil
	}

	rows, err := db.ScanResults(latest.ID, listCategory)
	if err != nil {
		return err
	}

	results := make([]scan.Result, 0, len(rows))
	for _, r := range rows {
		results = append(results, scan.Result{
			Dir:      scan.Directory{Path: r.Path},
			Category: classify.ParseCategory(r.Category),
		})
	}

	fmt.Print(output.RenderResultList(results, output.IsColorEnabled()))
	return nil
}

func validCategory(name string) bool {
	for _, cat := range classify.AllCategories {
		if string(cat) == name {
			return true
		}
	}
	return false
}
