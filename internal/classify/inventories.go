package classify

import "strings"

// Set is an inventory of identifier strings for one installation source.
type Set map[string]struct{}

// NewSet builds a Set from a list of names, skipping empties.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		if n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Has reports exact membership.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// HasSubstring reports whether name occurs as a substring of any entry.
// Plain containment, deliberately fuzzy: short names can false-positive,
// which is accepted for reproducibility.
func (s Set) HasSubstring(name string) bool {
	if name == "" {
		return false
	}
	for entry := range s {
		if strings.Contains(entry, name) {
			return true
		}
	}
	return false
}

// Inventories holds every source inventory for one run. Built once at
// startup and immutable afterward; an empty set simply means that source
// contributes no matches.
type Inventories struct {
	// Packages holds normalized names of installed pacman packages.
	Packages Set
	// Executables holds raw file names found on $PATH (not normalized).
	Executables Set
	// Flatpaks holds normalized installed Flatpak application ids.
	Flatpaks Set
	// DesktopEntries holds normalized desktop-entry basenames.
	DesktopEntries Set
	// AppImages holds normalized AppImage bundle basenames.
	AppImages Set
}
