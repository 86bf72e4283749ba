// Package output provides terminal output utilities for confprune:
// category tables, folder listings, a spinner, and a progress bar.
// Rendering uses plain ASCII plus ANSI colors when stdout is a TTY.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/scan"
)

// ANSI color codes for category display.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is
// not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// categoryColor returns the ANSI color for a category: green for any
// installed match, yellow for a partial match, red for orphaned, blue
// for kept.
func categoryColor(cat classify.Category) string {
	switch cat {
	case classify.InstalledPackage, classify.InstalledExecutable,
		classify.InstalledFlatpak, classify.InstalledDesktopFile,
		classify.InstalledAppImage:
		return colorGreen
	case classify.MaybeInstalledPartial:
		return colorYellow
	case classify.Orphaned:
		return colorRed
	case classify.Kept:
		return colorBlue
	}
	return colorGray
}

// Colorize wraps text in the category's color when enabled.
func Colorize(cat classify.Category, text string, enabled bool) string {
	if !enabled {
		return text
	}
	return categoryColor(cat) + text + colorReset
}

// RenderSummaryTable renders per-category folder counts in display
// order.
func RenderSummaryTable(counts map[classify.Category]int, colorize bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-42s %s\n", "CATEGORY", "FOLDERS"))
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteByte('\n')

	total := 0
	for _, cat := range classify.AllCategories {
		n := counts[cat]
		total += n
		label := Colorize(cat, fmt.Sprintf("%-42s", cat.Display()), colorize)
		sb.WriteString(fmt.Sprintf("%s %d\n", label, n))
	}

	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("%-42s %d\n", "Total", total))

	return sb.String()
}

// RenderResultList renders one folder per line with its category.
func RenderResultList(results []scan.Result, colorize bool) string {
	if len(results) == 0 {
		return "No folders found.\n"
	}

	var sb strings.Builder
	for _, r := range results {
		label := Colorize(r.Category, r.Category.Display(), colorize)
		sb.WriteString(fmt.Sprintf("%s  [%s]\n", r.Dir.Path, label))
	}
	return sb.String()
}
