// Package scan enumerates candidate application folders under the home
// directory and drives the one-at-a-time classification pass.
package scan

import (
	"os"
	"path/filepath"

	"github.com/confprune/confprune/internal/classify"
)

// Directory is one candidate application folder discovered during
// enumeration. Immutable once discovered.
type Directory struct {
	Path string
	Base string
}

// Result pairs a directory with its assigned category.
type Result struct {
	Dir      Directory
	Category classify.Category
}

// Ignorer filters paths out of enumeration before classification sees
// them.
type Ignorer interface {
	Contains(path string) bool
}

// Enumerate lists candidate folders in a fixed order: entries of
// ~/.config, then ~/.local/share, then hidden directories directly
// under the home directory (excluding .config and .local themselves).
// Non-directories and ignored paths are filtered here, upstream of the
// classifier.
func Enumerate(home string, ignore Ignorer) []Directory {
	var dirs []Directory

	appendDir := func(path string) {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return
		}
		if ignore != nil && ignore.Contains(path) {
			return
		}
		dirs = append(dirs, Directory{Path: path, Base: filepath.Base(path)})
	}

	listInto := func(parent string) {
		entries, err := os.ReadDir(parent)
		if err != nil {
			return
		}
		for _, e := range entries {
			appendDir(filepath.Join(parent, e.Name()))
		}
	}

	listInto(filepath.Join(home, ".config"))
	listInto(filepath.Join(home, ".local", "share"))

	entries, err := os.ReadDir(home)
	if err == nil {
		for _, e := range entries {
			name := e.Name()
			if len(name) == 0 || name[0] != '.' {
				continue
			}
			if name == ".config" || name == ".local" {
				continue
			}
			appendDir(filepath.Join(home, name))
		}
	}

	return dirs
}

// Pass is an explicit iterator over pending directories. The caller
// drives it one step at a time, so progress stays visible and the
// enumeration order is preserved exactly.
type Pass struct {
	dirs    []Directory
	engine  *classify.Engine
	idx     int
	results []Result
}

// NewPass creates a classification pass over dirs.
func NewPass(dirs []Directory, engine *classify.Engine) *Pass {
	return &Pass{dirs: dirs, engine: engine}
}

// Total returns the number of directories in the pass.
func (p *Pass) Total() int {
	return len(p.dirs)
}

// Next classifies the next directory and returns its result. ok is
// false once the pass is exhausted.
func (p *Pass) Next() (Result, bool) {
	if p.idx >= len(p.dirs) {
		return Result{}, false
	}
	dir := p.dirs[p.idx]
	p.idx++

	res := Result{
		Dir:      dir,
		Category: p.engine.Classify(dir.Path, dir.Base),
	}
	p.results = append(p.results, res)
	return res, true
}

// Results returns every result classified so far, in enumeration order.
// Each directory appears exactly once.
func (p *Pass) Results() []Result {
	return p.results
}

// CountByCategory tallies results per category.
func CountByCategory(results []Result) map[classify.Category]int {
	counts := make(map[classify.Category]int)
	for _, r := range results {
		counts[r.Category]++
	}
	return counts
}
