package describe

import (
	"context"
	"strings"
	"time"
)

const flatpakTimeout = 8 * time.Second

// flatpakDescription resolves a description via flatpak in two phases:
// installed applications first (exact id or id-suffix match, then
// `flatpak info`), remote search second (tab-delimited columns, exact
// matches before a substring fallback).
func (r *Resolver) flatpakDescription(ctx context.Context, name string) string {
	if _, err := r.look("flatpak"); err != nil {
		return ""
	}

	if out, err := r.run.Run(ctx, flatpakTimeout, "flatpak", "list", "--app", "--columns=application"); err == nil {
		for _, id := range nonEmptyLines(out) {
			if !matchesAppID(id, name) {
				continue
			}
			info, err := r.run.Run(ctx, flatpakTimeout, "flatpak", "info", id)
			if err != nil {
				continue
			}
			if desc := parseFlatpakInfo(info); desc != "" {
				return desc
			}
		}
	}

	out, err := r.run.Run(ctx, flatpakTimeout, "flatpak", "search", "--columns=name,application,description", name)
	if err != nil {
		return ""
	}
	return matchSearchRows(parseSearchRows(out), name)
}

// matchesAppID reports whether a Flatpak application id matches name,
// either in full or by its last dot-separated segment, ignoring case.
func matchesAppID(id, name string) bool {
	if strings.EqualFold(id, name) {
		return true
	}
	segs := strings.Split(id, ".")
	return strings.EqualFold(segs[len(segs)-1], name)
}

// parseFlatpakInfo pulls the summary out of `flatpak info` output. The
// first non-empty line has the form "Name - Summary".
func parseFlatpakInfo(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, after, ok := strings.Cut(line, " - "); ok {
			return strings.TrimSpace(after)
		}
		return line
	}
	return ""
}

// searchRow is one result of `flatpak search`.
type searchRow struct {
	name string
	id   string
	desc string
}

// parseSearchRows splits tab-delimited search output into rows. Lines
// without all three columns (including the "No matches found" notice)
// are skipped.
func parseSearchRows(out string) []searchRow {
	var rows []searchRow
	for _, line := range nonEmptyLines(out) {
		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			continue
		}
		rows = append(rows, searchRow{
			name: strings.TrimSpace(cols[0]),
			id:   strings.TrimSpace(cols[1]),
			desc: strings.TrimSpace(cols[2]),
		})
	}
	return rows
}

// matchSearchRows picks the best row for name: exact name, id-suffix,
// or full-id matches first, then a substring pass across all three
// columns.
func matchSearchRows(rows []searchRow, name string) string {
	for _, row := range rows {
		if strings.EqualFold(row.name, name) || matchesAppID(row.id, name) {
			return row.desc
		}
	}

	needle := strings.ToLower(name)
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.name), needle) ||
			strings.Contains(strings.ToLower(row.id), needle) ||
			strings.Contains(strings.ToLower(row.desc), needle) {
			return row.desc
		}
	}

	return ""
}

func nonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
