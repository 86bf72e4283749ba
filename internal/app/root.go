// Package app wires the confprune command tree.
package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for confprune
	RootCmd = &cobra.Command{
		Use:   "confprune",
		Short: "Find orphaned application config folders in your home directory",
		Long: `confprune scans ~/.config, ~/.local/share, and hidden folders in your
home directory for application state that no longer belongs to an
installed application. Folders are matched against installed pacman
packages, Flatpak apps, desktop entries, AppImage bundles, and
executables on PATH.

WARNING: Classification is heuristic (name matching, not package file
manifests). Back up and double-check before deleting anything.

Quick Start:
  1. confprune scan
  2. confprune list --category orphaned
  3. confprune describe <folder>   # what did this belong to?
  4. confprune keep <folder>       # or: confprune delete <folder>

Examples:
  # Classify every candidate folder
  confprune scan

  # Show orphaned folders from the last scan
  confprune list --category orphaned

  # Look up what a folder belonged to
  confprune describe ~/.config/oldapp

  # Classify new config folders as they appear
  confprune watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("confprune: orphaned config folder finder")
			fmt.Println()
			fmt.Println("Run 'confprune scan' to classify your home directory.")
			fmt.Println("Run 'confprune --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: <config dir>/history.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
