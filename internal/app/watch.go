package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/confprune/confprune/internal/output"
	"github.com/confprune/confprune/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for new application folders and classify them live",
	Long: `Watch ~/.config, ~/.local/share, and the home directory for newly
created folders and print a classification for each as it appears.
Runs in the foreground until interrupted with Ctrl-C.

The inventories are collected once at startup, so an application
installed while watching still shows as orphaned until the next run.`,
	Example: `  confprune watch`,
	RunE:    runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	engine := sess.engine()
	w, err := watcher.New(sess.home, engine, sess.ignore)
	if err != nil {
		return err
	}
	w.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Watching for new folders... (Ctrl-C to stop)")

	colorize := output.IsColorEnabled()
	for {
		select {
		case res, ok := <-w.Results():
			if !ok {
				return nil
			}
			label := output.Colorize(res.Category, res.Category.Display(), colorize)
			fmt.Printf("%s  [%s]\n", res.Dir.Path, label)
		case <-sigCh:
			fmt.Println("\nStopping watcher.")
			return w.Stop()
		}
	}
}
