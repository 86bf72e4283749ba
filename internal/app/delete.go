package app

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confprune/confprune/internal/classify"
)

var (
	deleteYes   bool
	deleteForce bool

	deleteCmd = &cobra.Command{
		Use:   "delete <folder>",
		Short: "Delete an orphaned folder",
		Long: `Delete a folder, preferably by moving it to the trash via 'gio trash'.
When gio is not available the folder would be removed permanently,
which requires --force.

Only folders the last scan classified as orphaned may be deleted;
kept and installed folders are refused.`,
		Example: `  # Move to trash after confirmation
  confprune delete ~/.config/oldapp

  # Permanent removal when trash is unavailable
  confprune delete --force ~/.config/oldapp`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
)

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "allow permanent removal when trash is unavailable")
	RootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	path, err := resolveDirArg(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	if sess.kept.Contains(path) {
		return fmt.Errorf("%s is in the kept list; run 'confprune unkeep' first", path)
	}

	// Re-classify right now rather than trusting a stale scan: the
	// application may have been installed since.
	engine := sess.engine()
	if cat := engine.Classify(path, filepath.Base(path)); cat != classify.Orphaned {
		return fmt.Errorf("%s is classified as %s, only orphaned folders can be deleted", path, cat.Display())
	}

	hasTrash := true
	if _, err := exec.LookPath("gio"); err != nil {
		hasTrash = false
	}

	if !hasTrash && !deleteForce {
		return fmt.Errorf("gio trash is not available; pass --force to delete %s permanently", path)
	}

	if !deleteYes {
		verb := "move to trash"
		if !hasTrash {
			verb = "PERMANENTLY delete"
		}
		if !confirm(fmt.Sprintf("Really %s %s?", verb, path)) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if hasTrash {
		if out, err := exec.Command("gio", "trash", path).CombinedOutput(); err != nil {
			return fmt.Errorf("gio trash failed: %w (%s)", err, strings.TrimSpace(string(out)))
		}
		fmt.Printf("Moved %s to trash\n", path)
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	fmt.Printf("Deleted %s\n", path)
	return nil
}

// confirm prompts on stdin for a y/N answer.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
