package output

import (
	"strings"
	"testing"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/scan"
)

func TestRenderSummaryTable(t *testing.T) {
	counts := map[classify.Category]int{
		classify.Orphaned:         3,
		classify.InstalledPackage: 7,
	}

	table := RenderSummaryTable(counts, false)

	if !strings.Contains(table, "Orphaned") {
		t.Error("summary missing Orphaned row")
	}
	if !strings.Contains(table, "Installed (package match)") {
		t.Error("summary missing package-match row")
	}
	if !strings.Contains(table, "Total") {
		t.Error("summary missing total row")
	}
	if !strings.Contains(table, "10") {
		t.Error("summary total not computed")
	}
	if strings.Contains(table, "\033[") {
		t.Error("colors emitted with colorize disabled")
	}
}

func TestRenderSummaryTable_Colorized(t *testing.T) {
	table := RenderSummaryTable(map[classify.Category]int{}, true)
	if !strings.Contains(table, colorRed) {
		t.Error("expected red orphaned row when colorized")
	}
	if !strings.Contains(table, colorReset) {
		t.Error("expected color reset when colorized")
	}
}

func TestRenderResultList(t *testing.T) {
	results := []scan.Result{
		{
			Dir:      scan.Directory{Path: "/home/alice/.config/oldapp", Base: "oldapp"},
			Category: classify.Orphaned,
		},
	}

	list := RenderResultList(results, false)
	if !strings.Contains(list, "/home/alice/.config/oldapp") {
		t.Error("result path missing")
	}
	if !strings.Contains(list, "[Orphaned]") {
		t.Error("category label missing")
	}

	if got := RenderResultList(nil, false); got != "No folders found.\n" {
		t.Errorf("empty list = %q", got)
	}
}

func TestColorize(t *testing.T) {
	plain := Colorize(classify.Kept, "text", false)
	if plain != "text" {
		t.Errorf("Colorize disabled = %q", plain)
	}
	colored := Colorize(classify.Kept, "text", true)
	if !strings.HasPrefix(colored, colorBlue) || !strings.HasSuffix(colored, colorReset) {
		t.Errorf("Colorize enabled = %q", colored)
	}
}
