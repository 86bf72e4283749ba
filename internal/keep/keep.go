// Package keep persists the list of folders the user has marked as
// kept. Plain text file, one absolute path per line, independent of the
// metadata cache.
package keep

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List manages the kept-folders file.
type List struct {
	path  string
	paths []string
}

// Load reads the kept list at path. A missing file yields an empty
// list. Entries whose directory no longer exists are dropped.
func Load(path string) (*List, error) {
	l := &List{path: path}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return l, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p := strings.TrimSpace(scanner.Text())
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			continue
		}
		l.paths = append(l.paths, p)
	}

	if err := scanner.Err(); err != nil {
		return l, err
	}
	return l, nil
}

// Paths returns the kept paths in file order.
func (l *List) Paths() []string {
	return l.paths
}

// Contains reports whether path is marked kept.
func (l *List) Contains(path string) bool {
	for _, p := range l.paths {
		if p == path {
			return true
		}
	}
	return false
}

// Add marks path as kept and rewrites the file. Adding an already-kept
// path is a no-op.
func (l *List) Add(path string) error {
	if l.Contains(path) {
		return nil
	}
	l.paths = append(l.paths, path)
	return l.save()
}

// Remove unmarks path and rewrites the file. Removing an unknown path
// is an error so the CLI can tell the user.
func (l *List) Remove(path string) error {
	for i, p := range l.paths {
		if p == path {
			l.paths = append(l.paths[:i], l.paths[i+1:]...)
			return l.save()
		}
	}
	return fmt.Errorf("%s is not in the kept list", path)
}

func (l *List) save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return err
	}
	var sb strings.Builder
	for _, p := range l.paths {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	return os.WriteFile(l.path, []byte(sb.String()), 0644)
}
