package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// Normalize lower-cases a name and collapses spaces, underscores, and
// dots to single dashes. This is the strict form used for inventory
// membership tests.
func Normalize(name string) string {
	n := strings.ToLower(name)
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.ReplaceAll(n, "_", "-")
	n = strings.ReplaceAll(n, ".", "-")
	return n
}

// DeriveCandidates produces the ordered candidate identifiers for a
// folder path, used as lookup keys by the description resolver. The
// variants are looser than Normalize: lower-casing converts spaces to
// dashes but keeps underscores, since AUR and Flatpak identifiers often
// retain them.
//
// Candidates are deduplicated, names shorter than two characters are
// dropped, and the result is sorted shortest-first (ties broken
// lexicographically). Shorter names tend to be the package-like ones.
func DeriveCandidates(path, home string, aliases map[string]string) []string {
	base := filepath.Base(path)

	raw := []string{base}

	if stripped := strings.TrimLeft(base, "."); stripped != base {
		raw = append(raw, stripped)
	}

	// A folder under ~/.config/<X> or ~/.local/share/<X> is usually named
	// after the application itself; pull out that segment.
	if rel, err := filepath.Rel(home, path); err == nil && !strings.HasPrefix(rel, "..") {
		segs := strings.Split(rel, string(filepath.Separator))
		if len(segs) >= 2 && segs[0] == ".config" {
			raw = append(raw, segs[1])
		}
		if len(segs) >= 3 && segs[0] == ".local" && segs[1] == "share" {
			raw = append(raw, segs[2])
		}
	}

	if alias, ok := aliases[base]; ok {
		raw = append(raw, alias)
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if len(name) < 2 {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, name := range raw {
		add(name)
	}
	for _, name := range raw {
		loose := strings.ReplaceAll(strings.ToLower(name), " ", "-")
		add(loose)
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})

	return out
}
