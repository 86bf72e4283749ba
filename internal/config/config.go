// Package config provides configuration file parsing for confprune.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the confprune config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/confprune if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "confprune"), nil
}

// defaultAliases maps folder base names that do not resemble their owning
// application to a canonical package identifier. Consulted before any
// normalization, keyed on the raw base name.
var defaultAliases = map[string]string{
	".audacity-data": "audacity",
	".SynologyDrive": "synology-drive",
	"Code - OSS":     "code-oss",
	".eID_klient":    "eidklient",
	".mozilla":       "mozilla",
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() map[string]string {
	out := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		out[k] = v
	}
	return out
}

// LoadAliases returns the built-in alias table merged with user overrides
// from {dir}/aliases. Each line has the form "folder name=package". User
// entries win over built-ins. A missing file yields the built-ins alone;
// malformed lines are silently skipped.
func LoadAliases(dir string) (map[string]string, error) {
	aliases := DefaultAliases()

	path := filepath.Join(dir, "aliases")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return aliases, nil
		}
		return aliases, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue // no "=" or "=" is first character — invalid, skip
		}

		name := strings.TrimSpace(line[:idx])
		pkg := strings.TrimSpace(line[idx+1:])

		if name == "" || pkg == "" {
			continue
		}

		aliases[name] = pkg
	}

	if err := scanner.Err(); err != nil {
		return aliases, err
	}

	return aliases, nil
}

// defaultIgnored lists home-relative path prefixes that are never
// enumerated or classified. Shared infrastructure directories whose
// absence of an owning package is expected, not a sign of orphanhood.
var defaultIgnored = []string{
	".local/share/applications",
	".local/share/backgrounds",
	".local/share/keyrings",
	".local/share/sounds",
	".local/share/Trash",
	".local/share/flatpak/runtime",
	".cache",
	".mozilla/cache",
	".thumbnails",
	".npm",
	".config/pulse",
	".config/gtk-4.0",
	".config/gtk-3.0",
	".config/autostart",
}

// IgnoreList holds absolute path prefixes excluded from scanning.
// A path is ignored when it equals a prefix or lives underneath one.
type IgnoreList struct {
	prefixes []string
}

// LoadIgnoreList builds the ignore list for the given home directory:
// the built-in prefixes plus one absolute or home-relative path per line
// from {dir}/ignore. Missing file means built-ins only.
func LoadIgnoreList(dir, home string) (*IgnoreList, error) {
	il := &IgnoreList{}
	for _, rel := range defaultIgnored {
		il.prefixes = append(il.prefixes, filepath.Join(home, rel))
	}

	path := filepath.Join(dir, "ignore")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return il, nil
		}
		return il, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(home, line)
		}
		il.prefixes = append(il.prefixes, filepath.Clean(line))
	}

	if err := scanner.Err(); err != nil {
		return il, err
	}

	return il, nil
}

// Contains reports whether path is ignored, either exactly or as a
// descendant of an ignored prefix.
func (il *IgnoreList) Contains(path string) bool {
	for _, p := range il.prefixes {
		if path == p || strings.HasPrefix(path, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
