package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAliases_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	aliases, err := LoadAliases(dir)
	if err != nil {
		t.Fatalf("LoadAliases() returned error for missing file: %v", err)
	}
	if got := aliases[".mozilla"]; got != "mozilla" {
		t.Errorf("built-in alias .mozilla = %q, want %q", got, "mozilla")
	}
	if got := aliases[".SynologyDrive"]; got != "synology-drive" {
		t.Errorf("built-in alias .SynologyDrive = %q, want %q", got, "synology-drive")
	}
}

func TestLoadAliases_UserOverridesAndAdditions(t *testing.T) {
	dir := t.TempDir()
	content := `# user aliases
.mozilla=firefox
My App=my-app
`
	if err := os.WriteFile(filepath.Join(dir, "aliases"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	aliases, err := LoadAliases(dir)
	if err != nil {
		t.Fatalf("LoadAliases() error: %v", err)
	}
	if got := aliases[".mozilla"]; got != "firefox" {
		t.Errorf("user override lost: .mozilla = %q, want %q", got, "firefox")
	}
	if got := aliases["My App"]; got != "my-app" {
		t.Errorf("Aliases[\"My App\"] = %q, want %q", got, "my-app")
	}
}

func TestLoadAliases_InvalidLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	content := `noequalssign
=missingname
 =
valid=pkg
`
	if err := os.WriteFile(filepath.Join(dir, "aliases"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	aliases, err := LoadAliases(dir)
	if err != nil {
		t.Fatalf("LoadAliases() error: %v", err)
	}
	if got := aliases["valid"]; got != "pkg" {
		t.Errorf("Aliases[\"valid\"] = %q, want %q", got, "pkg")
	}
	if _, ok := aliases["noequalssign"]; ok {
		t.Error("malformed line without '=' was not skipped")
	}
}

func TestIgnoreList_Defaults(t *testing.T) {
	dir := t.TempDir()
	home := "/home/alice"

	il, err := LoadIgnoreList(dir, home)
	if err != nil {
		t.Fatalf("LoadIgnoreList() error: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/home/alice/.cache", true},
		{"/home/alice/.cache/mozilla", true},
		{"/home/alice/.config/pulse", true},
		{"/home/alice/.config/gimp", false},
		{"/home/alice/.cachefoo", false}, // prefix must be a path boundary
	}
	for _, tt := range tests {
		if got := il.Contains(tt.path); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIgnoreList_UserEntries(t *testing.T) {
	dir := t.TempDir()
	home := "/home/alice"
	content := `# extra ignores
.config/myapp
/opt/shared
`
	if err := os.WriteFile(filepath.Join(dir, "ignore"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	il, err := LoadIgnoreList(dir, home)
	if err != nil {
		t.Fatalf("LoadIgnoreList() error: %v", err)
	}

	if !il.Contains("/home/alice/.config/myapp") {
		t.Error("home-relative user entry not honored")
	}
	if !il.Contains("/opt/shared/sub") {
		t.Error("absolute user entry not honored for descendant")
	}
}

func TestDir_RespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "confprune") {
		t.Errorf("Dir() = %q, want %q", dir, "/tmp/xdg/confprune")
	}
}
