package describe

import "testing"

func TestMatchesAppID(t *testing.T) {
	tests := []struct {
		id   string
		name string
		want bool
	}{
		{"org.gimp.GIMP", "gimp", true},       // last segment, case-insensitive
		{"org.gimp.GIMP", "org.gimp.gimp", true}, // full id, case-insensitive
		{"org.gimp.GIMP", "org.gimp", false},
		{"com.spotify.Client", "spotify", false}, // suffix is Client
		{"gimp", "gimp", true},
	}
	for _, tt := range tests {
		if got := matchesAppID(tt.id, tt.name); got != tt.want {
			t.Errorf("matchesAppID(%q, %q) = %v, want %v", tt.id, tt.name, got, tt.want)
		}
	}
}

func TestParseFlatpakInfo(t *testing.T) {
	out := `
GIMP - GNU Image Manipulation Program

          ID: org.gimp.GIMP
         Ref: app/org.gimp.GIMP/x86_64/stable
`
	if got := parseFlatpakInfo(out); got != "GNU Image Manipulation Program" {
		t.Errorf("parseFlatpakInfo = %q", got)
	}
}

func TestParseFlatpakInfo_NoSeparator(t *testing.T) {
	if got := parseFlatpakInfo("JustAName\n"); got != "JustAName" {
		t.Errorf("parseFlatpakInfo = %q", got)
	}
	if got := parseFlatpakInfo(""); got != "" {
		t.Errorf("parseFlatpakInfo(empty) = %q", got)
	}
}

func TestParseSearchRows_SkipsMalformedLines(t *testing.T) {
	out := "GIMP\torg.gimp.GIMP\tGNU Image Manipulation Program\nNo matches found\n"
	rows := parseSearchRows(out)
	if len(rows) != 1 {
		t.Fatalf("parsed %d rows, want 1", len(rows))
	}
	if rows[0].id != "org.gimp.GIMP" {
		t.Errorf("row id = %q", rows[0].id)
	}
}

func TestMatchSearchRows(t *testing.T) {
	rows := []searchRow{
		{name: "Inkscape", id: "org.inkscape.Inkscape", desc: "Vector graphics editor"},
		{name: "GIMP", id: "org.gimp.GIMP", desc: "GNU Image Manipulation Program"},
	}

	// Exact name match beats substring.
	if got := matchSearchRows(rows, "gimp"); got != "GNU Image Manipulation Program" {
		t.Errorf("exact match = %q", got)
	}
	// Substring fallback across columns.
	if got := matchSearchRows(rows, "inksc"); got != "Vector graphics editor" {
		t.Errorf("substring match = %q", got)
	}
	if got := matchSearchRows(rows, "blender"); got != "" {
		t.Errorf("unexpected match: %q", got)
	}
}
