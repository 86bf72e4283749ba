// Package inventory collects the installation-source inventories that
// classification runs against: pacman packages, Flatpak applications,
// desktop entries, AppImage bundles, and executables on $PATH.
//
// Every collector degrades to an empty set when its source is
// unavailable. A missing tool or unreadable directory is not an error;
// it just contributes no matches.
package inventory

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/confprune/confprune/internal/classify"
)

// desktopEntryDir is where system-wide desktop entries live.
const desktopEntryDir = "/usr/share/applications"

// appImageDirName is the conventional AppImage bundle directory under
// the home directory.
const appImageDirName = "Applications"

// Collect builds all source inventories for one run. The result is
// immutable by convention; there is no live refresh.
func Collect(home string) *classify.Inventories {
	return &classify.Inventories{
		Packages:       Packages(),
		Executables:    Executables(os.Getenv("PATH")),
		Flatpaks:       Flatpaks(),
		DesktopEntries: DesktopEntries(desktopEntryDir),
		AppImages:      AppImages(filepath.Join(home, appImageDirName)),
	}
}

// Packages returns the normalized names of installed pacman packages,
// or an empty set if pacman is unavailable.
func Packages() classify.Set {
	out, err := exec.Command("pacman", "-Qq").Output()
	if err != nil {
		return classify.NewSet()
	}
	return normalizedLines(string(out))
}

// Flatpaks returns the normalized application ids of installed Flatpak
// apps, or an empty set if flatpak is unavailable.
func Flatpaks() classify.Set {
	out, err := exec.Command("flatpak", "list", "--app", "--columns=application").Output()
	if err != nil {
		return classify.NewSet()
	}
	return normalizedLines(string(out))
}

// Executables returns the raw file names of every entry in every
// directory listed on pathEnv. Names are deliberately not normalized;
// the classifier tests its normalized candidate against them verbatim.
func Executables(pathEnv string) classify.Set {
	cmds := classify.NewSet()
	for _, dir := range filepath.SplitList(pathEnv) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			cmds[e.Name()] = struct{}{}
		}
	}
	return cmds
}

// DesktopEntries returns the normalized basenames of *.desktop files in
// dir, extension stripped.
func DesktopEntries(dir string) classify.Set {
	apps := classify.NewSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return apps
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".desktop") {
			continue
		}
		base := strings.TrimSuffix(name, ".desktop")
		apps[classify.Normalize(base)] = struct{}{}
	}
	return apps
}

// AppImages returns the normalized basenames of AppImage bundles in
// dir. The extension is matched case-insensitively and stripped.
func AppImages(dir string) classify.Set {
	apps := classify.NewSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return apps
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".appimage") {
			continue
		}
		base := name[:len(name)-len(".appimage")]
		apps[classify.Normalize(base)] = struct{}{}
	}
	return apps
}

// normalizedLines splits command output into lines and normalizes each
// non-empty one into a Set.
func normalizedLines(out string) classify.Set {
	s := classify.NewSet()
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s[classify.Normalize(line)] = struct{}{}
	}
	return s
}
