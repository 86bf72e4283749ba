// Package watcher classifies application folders live as they appear.
// It watches ~/.config, ~/.local/share, and the home directory itself
// for newly created directories and runs each through the
// classification engine built at startup.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/scan"
)

// Watcher emits a classification result for every directory that
// appears under the watched roots.
type Watcher struct {
	fsw    *fsnotify.Watcher
	engine *classify.Engine
	ignore scan.Ignorer
	home   string

	results chan scan.Result
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New creates a Watcher for the given home directory. Roots that do not
// exist are skipped; at least one must be watchable.
func New(home string, engine *classify.Engine, ignore scan.Ignorer) (*Watcher, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		engine:  engine,
		ignore:  ignore,
		home:    home,
		results: make(chan scan.Result, 16),
		stopCh:  make(chan struct{}),
	}

	watched := 0
	for _, root := range []string{
		home,
		filepath.Join(home, ".config"),
		filepath.Join(home, ".local", "share"),
	} {
		if err := fsw.Add(root); err != nil {
			continue
		}
		watched++
	}
	if watched == 0 {
		fsw.Close()
		return nil, fmt.Errorf("no watchable directories under %s", home)
	}

	return w, nil
}

// Results returns the channel classification results arrive on.
func (w *Watcher) Results() <-chan scan.Result {
	return w.results
}

// Start begins watching for new directories.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop halts the watcher and closes the results channel.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.fsw.Close()
	w.wg.Wait()
	close(w.results)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) {
				continue
			}
			if res, ok := w.classify(ev.Name); ok {
				select {
				case w.results <- res:
				case <-w.stopCh:
					return
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: %v\n", err)
		case <-w.stopCh:
			return
		}
	}
}

// classify decides whether a created path is a candidate application
// folder and classifies it. Entries directly under home count only when
// hidden, mirroring the scan pass.
func (w *Watcher) classify(path string) (scan.Result, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return scan.Result{}, false
	}
	if w.ignore != nil && w.ignore.Contains(path) {
		return scan.Result{}, false
	}

	base := filepath.Base(path)
	if filepath.Dir(path) == w.home {
		if !strings.HasPrefix(base, ".") || base == ".config" || base == ".local" {
			return scan.Result{}, false
		}
	}

	dir := scan.Directory{Path: path, Base: base}
	return scan.Result{Dir: dir, Category: w.engine.Classify(dir.Path, dir.Base)}, true
}
