package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keepCmd = &cobra.Command{
	Use:   "keep <folder>",
	Short: "Mark a folder as kept",
	Long: `Mark a folder as kept. Kept folders are excluded from the orphaned
category on every future scan until unkept, and are persisted
independently of scan results.`,
	Example: `  confprune keep ~/.config/oldapp`,
	Args:    cobra.ExactArgs(1),
	RunE:    runKeep,
}

var unkeepCmd = &cobra.Command{
	Use:     "unkeep <folder>",
	Short:   "Remove a folder from the kept list",
	Example: `  confprune unkeep ~/.config/oldapp`,
	Args:    cobra.ExactArgs(1),
	RunE:    runUnkeep,
}

func init() {
	RootCmd.AddCommand(keepCmd)
	RootCmd.AddCommand(unkeepCmd)
}

func runKeep(cmd *cobra.Command, args []string) error {
	path, err := resolveDirArg(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	if err := sess.kept.Add(path); err != nil {
		return fmt.Errorf("failed to update kept list: %w", err)
	}
	fmt.Printf("Kept %s\n", path)
	return nil
}

func runUnkeep(cmd *cobra.Command, args []string) error {
	path, err := resolveDirArg(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	if err := sess.kept.Remove(path); err != nil {
		return err
	}
	fmt.Printf("Unkept %s\n", path)
	return nil
}
