// Package describe resolves a human-readable description for the
// application a folder likely belongs to. Sources are consulted in
// fixed priority (pacman, then an AUR helper, then Flatpak), every
// outcome is cached durably, and all external-tool failures degrade to
// "no description found".
package describe

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/metacache"
	"github.com/confprune/confprune/internal/scan"
)

// Source labels used as cache-key prefixes.
const (
	sourcePacman  = "pacman"
	sourceAUR     = "aur"
	sourceFlatpak = "flatpak"
	// sourceMeta keys the synthesized negative entry written when every
	// candidate failed against every source.
	sourceMeta = "meta"
)

// Resolution is the outcome of resolving one directory.
type Resolution struct {
	// Name is the candidate that produced the description, or the first
	// candidate when nothing was found.
	Name        string
	Description string
	Found       bool
}

// Resolver runs the prioritized multi-source description lookup.
type Resolver struct {
	cache   *metacache.Cache
	home    string
	aliases map[string]string

	run      CommandRunner
	look     func(string) (string, error)
	sleep    func(time.Duration)
	progress func(string)
}

// New creates a Resolver backed by the given cache.
func New(cache *metacache.Cache, home string, aliases map[string]string) *Resolver {
	return &Resolver{
		cache:   cache,
		home:    home,
		aliases: aliases,
		run:     execRunner{},
		look:    exec.LookPath,
		sleep:   time.Sleep,
	}
}

// OnProgress registers a callback invoked with status text as the
// resolution advances. The callback runs on the resolver's goroutine;
// consumers needing another context must marshal it themselves (the
// Worker does this via its event channel).
func (r *Resolver) OnProgress(fn func(string)) {
	r.progress = fn
}

func (r *Resolver) report(format string, args ...interface{}) {
	if r.progress != nil {
		r.progress(fmt.Sprintf(format, args...))
	}
}

// Resolve derives candidates for dir and walks them through the source
// chain. The first positive answer wins; both positive and negative
// outcomes are cached, and the whole cache is flushed before returning.
// External-tool failures never surface as errors.
func (r *Resolver) Resolve(ctx context.Context, dir scan.Directory) Resolution {
	candidates := classify.DeriveCandidates(dir.Path, r.home, r.aliases)
	if len(candidates) == 0 {
		return Resolution{Name: dir.Base}
	}

	sources := []struct {
		label string
		query func(context.Context, string) string
	}{
		{sourcePacman, r.pacmanDescription},
		{sourceAUR, r.aurDescription},
		{sourceFlatpak, r.flatpakDescription},
	}

	// The in-memory cache stays authoritative when the disk write
	// fails, so flush errors are deliberately dropped.
	defer func() { _ = r.cache.Save() }()

	for _, cand := range candidates {
		for _, src := range sources {
			if cached, ok := r.cache.Get(src.label, cand); ok {
				if cached == metacache.NotFoundMarker {
					continue
				}
				r.report("Found %q via %s (cached)", cand, src.label)
				return Resolution{Name: cand, Description: cached, Found: true}
			}

			r.report("Querying %s for %q...", src.label, cand)
			desc := src.query(ctx, cand)
			if desc != "" {
				r.cache.Put(src.label, cand, desc)
				return Resolution{Name: cand, Description: desc, Found: true}
			}
			r.cache.PutNegative(src.label, cand)
		}
	}

	r.cache.PutNegative(sourceMeta, candidates[0])
	r.report("No description found for %q", candidates[0])
	return Resolution{Name: candidates[0]}
}
