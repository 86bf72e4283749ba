package describe

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/confprune/confprune/internal/metacache"
	"github.com/confprune/confprune/internal/scan"
)

// blockingRunner stalls every command until released, simulating a slow
// external tool.
type blockingRunner struct {
	release chan struct{}
}

func (b *blockingRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	<-b.release
	return "", nil
}

func TestWorker_SingleFlight(t *testing.T) {
	runner := &blockingRunner{release: make(chan struct{})}
	cache := metacache.Load(filepath.Join(t.TempDir(), "cache.json"))
	r := New(cache, "/home/alice", nil)
	r.run = runner
	r.look = func(string) (string, error) { return "", errors.New("not found") }
	r.sleep = func(time.Duration) {}

	w := NewWorker(r)
	w.Start()
	defer w.Stop()

	dir := scan.Directory{Path: "/home/alice/.config/gimp", Base: "gimp"}
	if !w.Resolve(dir) {
		t.Fatal("first Resolve rejected")
	}

	// Wait for the worker to pick the request up, then a second request
	// must be refused while the first is in flight.
	time.Sleep(10 * time.Millisecond)
	if w.Resolve(scan.Directory{Path: "/home/alice/.config/vlc", Base: "vlc"}) {
		t.Error("second Resolve accepted while one was in flight")
	}

	close(runner.release)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-w.Events():
			if !ev.Done {
				continue
			}
			if ev.Dir.Path != dir.Path {
				t.Errorf("completion for wrong dir: %q", ev.Dir.Path)
			}
			if ev.Result.Found {
				t.Errorf("unexpected resolution: %+v", ev.Result)
			}
			return
		case <-deadline:
			t.Fatal("no completion event")
		}
	}
}

func TestWorker_AcceptsNextAfterCompletion(t *testing.T) {
	runner := &fakeRunner{}
	cache := metacache.Load(filepath.Join(t.TempDir(), "cache.json"))
	r := New(cache, "/home/alice", nil)
	r.run = runner
	r.look = func(string) (string, error) { return "", errors.New("not found") }
	r.sleep = func(time.Duration) {}

	w := NewWorker(r)
	w.Start()
	defer w.Stop()

	dir := scan.Directory{Path: "/home/alice/.config/gimp", Base: "gimp"}
	if !w.Resolve(dir) {
		t.Fatal("first Resolve rejected")
	}

	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case ev := <-w.Events():
			done = ev.Done
		case <-deadline:
			t.Fatal("no completion event")
		}
	}

	if !w.Resolve(scan.Directory{Path: "/home/alice/.config/vlc", Base: "vlc"}) {
		t.Error("worker refused a request after the previous one completed")
	}
}
