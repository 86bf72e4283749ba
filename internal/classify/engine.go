package classify

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memoSize bounds the candidate-name memoization cache. The same base
// name regularly appears under both ~/.config and ~/.local/share, so
// repeated substring scans over the package inventory are avoided.
const memoSize = 512

// Engine classifies directories against the collected inventories.
// It is deterministic and touches nothing outside the inventories and
// the kept set it was built with.
type Engine struct {
	inv     *Inventories
	aliases map[string]string
	kept    map[string]struct{}
	memo    *lru.Cache[string, Category]
}

// NewEngine creates an Engine. kept holds absolute paths the user has
// marked as kept; those are never reclassified into another bucket.
func NewEngine(inv *Inventories, aliases map[string]string, kept []string) *Engine {
	keptSet := make(map[string]struct{}, len(kept))
	for _, p := range kept {
		keptSet[p] = struct{}{}
	}
	// Only fails for non-positive sizes.
	memo, _ := lru.New[string, Category](memoSize)
	return &Engine{
		inv:     inv,
		aliases: aliases,
		kept:    keptSet,
		memo:    memo,
	}
}

// CandidateName returns the single strict lookup name for a folder base
// name: the alias-table entry when one exists for the raw base, else the
// normalized base with any leading dots stripped first.
func (e *Engine) CandidateName(base string) string {
	if alias, ok := e.aliases[base]; ok {
		return alias
	}
	return Normalize(strings.TrimLeft(base, "."))
}

// Classify assigns exactly one category to the directory at path with
// the given base name. Rules apply in fixed precedence, first match
// wins. Kept paths stay kept.
func (e *Engine) Classify(path, base string) Category {
	if _, ok := e.kept[path]; ok {
		return Kept
	}

	name := e.CandidateName(base)
	if cat, ok := e.memo.Get(name); ok {
		return cat
	}

	cat := e.classifyName(name)
	e.memo.Add(name, cat)
	return cat
}

func (e *Engine) classifyName(name string) Category {
	switch {
	case e.inv.Packages.Has(name):
		return InstalledPackage
	case e.inv.Executables.Has(name):
		return InstalledExecutable
	case e.inv.Packages.HasSubstring(name):
		return MaybeInstalledPartial
	case e.inv.Flatpaks.HasSubstring(name):
		return InstalledFlatpak
	case e.inv.DesktopEntries.HasSubstring(name):
		return InstalledDesktopFile
	case e.inv.AppImages.HasSubstring(name):
		return InstalledAppImage
	}
	return Orphaned
}
