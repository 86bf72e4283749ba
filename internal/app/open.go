package app

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:     "open <folder>",
	Short:   "Open a folder in the file manager",
	Example: `  confprune open ~/.config/oldapp`,
	Args:    cobra.ExactArgs(1),
	RunE:    runOpen,
}

func init() {
	RootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	path, err := resolveDirArg(args[0])
	if err != nil {
		return err
	}

	// Fire and forget; the file manager outlives this process.
	if err := exec.Command("xdg-open", path).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
