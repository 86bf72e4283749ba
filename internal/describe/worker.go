package describe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/confprune/confprune/internal/scan"
)

// Event is delivered on the worker's event channel. Progress events
// carry Text; the terminal event carries Done plus the Resolution.
type Event struct {
	Text   string
	Done   bool
	Dir    scan.Directory
	Result Resolution
}

// Worker runs resolutions on a single dedicated goroutine so slow
// external queries never block the caller. At most one resolution is in
// flight at a time; progress and completion are marshaled onto the
// event channel rather than mutated across goroutines.
type Worker struct {
	resolver *Resolver
	requests chan scan.Directory
	events   chan Event
	stopCh   chan struct{}
	wg       sync.WaitGroup
	busy     atomic.Bool
}

// NewWorker wraps resolver in a single-flight worker.
func NewWorker(resolver *Resolver) *Worker {
	w := &Worker{
		resolver: resolver,
		requests: make(chan scan.Directory),
		events:   make(chan Event, 16),
		stopCh:   make(chan struct{}),
	}
	resolver.OnProgress(func(text string) {
		// Drop progress (never completion) events if the consumer lags;
		// they are purely informational.
		select {
		case w.events <- Event{Text: text}:
		default:
		}
	})
	return w
}

// Events returns the channel progress and completion events arrive on.
func (w *Worker) Events() <-chan Event {
	return w.events
}

// Start launches the worker goroutine.
func (w *Worker) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Resolve submits dir for resolution. Returns false without queueing
// when a resolution is already in flight.
func (w *Worker) Resolve(dir scan.Directory) bool {
	if !w.busy.CompareAndSwap(false, true) {
		return false
	}
	select {
	case w.requests <- dir:
		return true
	case <-w.stopCh:
		w.busy.Store(false)
		return false
	}
}

// Stop shuts the worker down after any in-flight resolution completes.
func (w *Worker) Stop() {
	close(w.stopCh)
	w.wg.Wait()
}

func (w *Worker) loop() {
	defer w.wg.Done()

	for {
		select {
		case dir := <-w.requests:
			res := w.resolver.Resolve(context.Background(), dir)
			w.busy.Store(false)
			w.events <- Event{Done: true, Dir: dir, Result: res}
		case <-w.stopCh:
			return
		}
	}
}
