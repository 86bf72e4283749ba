package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/confprune/confprune/internal/classify"
)

type ignoreFunc func(string) bool

func (f ignoreFunc) Contains(path string) bool { return f(path) }

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	for _, d := range []string{
		".config/gimp",
		".config/vlc",
		".local/share/Steam",
		".themes",
		".cache",
	} {
		if err := os.MkdirAll(filepath.Join(home, d), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}
	// A plain file in ~/.config must not be enumerated.
	if err := os.WriteFile(filepath.Join(home, ".config", "monitors.xml"), nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// A non-hidden home dir must not be enumerated.
	if err := os.MkdirAll(filepath.Join(home, "Documents"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	return home
}

func TestEnumerate_OrderAndFiltering(t *testing.T) {
	home := setupHome(t)
	ignore := ignoreFunc(func(path string) bool {
		return path == filepath.Join(home, ".cache")
	})

	dirs := Enumerate(home, ignore)

	var bases []string
	for _, d := range dirs {
		bases = append(bases, d.Base)
	}

	// .config entries first (sorted by ReadDir), then .local/share, then
	// hidden home dirs.
	want := []string{"gimp", "vlc", "Steam", ".themes"}
	if len(bases) != len(want) {
		t.Fatalf("Enumerate returned %v, want %v", bases, want)
	}
	for i := range want {
		if bases[i] != want[i] {
			t.Errorf("dirs[%d] = %q, want %q", i, bases[i], want[i])
		}
	}
}

func TestEnumerate_MissingHomeSubdirs(t *testing.T) {
	home := t.TempDir()
	dirs := Enumerate(home, nil)
	if len(dirs) != 0 {
		t.Errorf("expected no dirs for empty home, got %d", len(dirs))
	}
}

func TestPass_OneAtATimeInOrder(t *testing.T) {
	home := setupHome(t)
	dirs := Enumerate(home, nil)

	inv := &classify.Inventories{
		Packages:       classify.NewSet("gimp"),
		Executables:    classify.NewSet(),
		Flatpaks:       classify.NewSet(),
		DesktopEntries: classify.NewSet(),
		AppImages:      classify.NewSet(),
	}
	pass := NewPass(dirs, classify.NewEngine(inv, nil, nil))

	if pass.Total() != len(dirs) {
		t.Errorf("Total() = %d, want %d", pass.Total(), len(dirs))
	}

	var results []Result
	for {
		res, ok := pass.Next()
		if !ok {
			break
		}
		results = append(results, res)
	}

	if len(results) != len(dirs) {
		t.Fatalf("classified %d of %d dirs", len(results), len(dirs))
	}
	for i := range dirs {
		if results[i].Dir.Path != dirs[i].Path {
			t.Errorf("result %d out of order: %q", i, results[i].Dir.Path)
		}
	}

	// Each directory appears exactly once in the result table.
	seen := make(map[string]int)
	for _, r := range pass.Results() {
		seen[r.Dir.Path]++
	}
	for path, n := range seen {
		if n != 1 {
			t.Errorf("directory %q classified %d times", path, n)
		}
	}

	// Exhausted pass keeps returning ok=false.
	if _, ok := pass.Next(); ok {
		t.Error("Next() returned ok=true after exhaustion")
	}
}

func TestCountByCategory(t *testing.T) {
	results := []Result{
		{Category: classify.Orphaned},
		{Category: classify.Orphaned},
		{Category: classify.InstalledPackage},
	}
	counts := CountByCategory(results)
	if counts[classify.Orphaned] != 2 || counts[classify.InstalledPackage] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
