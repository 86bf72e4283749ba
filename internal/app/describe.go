package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/confprune/confprune/internal/describe"
	"github.com/confprune/confprune/internal/output"
	"github.com/confprune/confprune/internal/scan"
)

var describeCmd = &cobra.Command{
	Use:   "describe <folder>",
	Short: "Look up what application a folder belonged to",
	Long: `Resolve a human-readable description for the application a folder
likely belongs to. Sources are tried in order — pacman, an AUR helper
(yay or paru), then Flatpak — and both hits and misses are cached in
the metadata cache, so repeated lookups are instant and offline.

External queries can take a few seconds each; each carries its own
timeout and a missing tool simply skips that source.`,
	Example: `  confprune describe ~/.config/oldapp
  confprune describe ~/.SynologyDrive`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	RootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	path, err := resolveDirArg(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	cache := sess.loadCache()
	resolver := describe.New(cache, sess.home, sess.aliases)

	// Resolution runs on the single-flight worker; the foreground
	// consumes its events so slow tools never block progress display.
	worker := describe.NewWorker(resolver)
	worker.Start()
	defer worker.Stop()

	dir := scan.Directory{Path: path, Base: filepath.Base(path)}
	if !worker.Resolve(dir) {
		return fmt.Errorf("a resolution is already in flight")
	}

	spinner := output.NewSpinner("Resolving description")
	spinner.Start()

	for ev := range worker.Events() {
		if !ev.Done {
			spinner.SetMessage(ev.Text)
			continue
		}

		if ev.Result.Found {
			spinner.StopWithMessage(fmt.Sprintf("%s: %s", ev.Result.Name, ev.Result.Description))
		} else {
			spinner.StopWithMessage(fmt.Sprintf("%s: description not found", ev.Result.Name))
		}
		return nil
	}

	spinner.Stop()
	return nil
}
