package keep

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "kept.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.Paths()) != 0 {
		t.Errorf("expected empty list, got %v", l.Paths())
	}
}

func TestLoad_DropsVanishedDirs(t *testing.T) {
	tmp := t.TempDir()
	existing := filepath.Join(tmp, "exists")
	if err := os.MkdirAll(existing, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	path := filepath.Join(tmp, "kept.txt")
	content := existing + "\n" + filepath.Join(tmp, "gone") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.Paths()) != 1 || l.Paths()[0] != existing {
		t.Errorf("Paths() = %v, want [%s]", l.Paths(), existing)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "app")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(tmp, "kept.txt")

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := l.Add(dir); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Idempotent add.
	if err := l.Add(dir); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Contains(dir) {
		t.Error("added path missing after reload")
	}
	if len(reloaded.Paths()) != 1 {
		t.Errorf("duplicate entries after double add: %v", reloaded.Paths())
	}

	if err := reloaded.Remove(dir); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if reloaded.Contains(dir) {
		t.Error("removed path still present")
	}
	if err := reloaded.Remove(dir); err == nil {
		t.Error("removing unknown path should error")
	}
}
