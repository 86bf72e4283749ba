package describe

import (
	"context"
	"strings"
	"time"
)

// Query timeouts escalate with query cost: -Qi hits the local database,
// -Si the sync databases, -Ss scans every repository.
const (
	pacmanInfoTimeout   = 2 * time.Second
	pacmanRepoTimeout   = 5 * time.Second
	pacmanSearchTimeout = 8 * time.Second
)

// descriptionLabels are the accepted spellings of the pacman
// Description field label. Localized installs translate it; "Popis" is
// the spelling seen on Slovak and Czech systems.
var descriptionLabels = []string{"Description", "Popis"}

// pacmanDescription tries three escalating pacman queries for name and
// returns the first description found, or "". Timeouts and non-zero
// exits degrade to an empty result for that sub-query.
func (r *Resolver) pacmanDescription(ctx context.Context, name string) string {
	if out, err := r.run.Run(ctx, pacmanInfoTimeout, "pacman", "-Qi", name); err == nil {
		if desc := parseDescriptionField(out); desc != "" {
			return desc
		}
	}

	if out, err := r.run.Run(ctx, pacmanRepoTimeout, "pacman", "-Si", name); err == nil {
		if desc := parseDescriptionField(out); desc != "" {
			return desc
		}
	}

	if out, err := r.run.Run(ctx, pacmanSearchTimeout, "pacman", "-Ss", "^"+name+"$"); err == nil {
		if desc := parseSearchDescription(out, name); desc != "" {
			return desc
		}
	}

	return ""
}

// parseDescriptionField extracts the value of a colon-delimited
// Description line from pacman -Qi/-Si style output.
func parseDescriptionField(out string) string {
	for _, line := range strings.Split(out, "\n") {
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		label := strings.TrimSpace(line[:idx])
		for _, want := range descriptionLabels {
			if label == want {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	return ""
}

// parseSearchDescription parses pacman -Ss output. Packages appear as a
// "repo/name version" header line followed by an indented description
// line. The header whose package name equals name wins; with no exact
// header match, the first indented non-empty line is a best-effort
// fallback.
func parseSearchDescription(out, name string) string {
	lines := strings.Split(out, "\n")

	for i, line := range lines {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		slash := strings.IndexByte(fields[0], '/')
		if slash < 0 || fields[0][slash+1:] != name {
			continue
		}
		if i+1 < len(lines) {
			next := lines[i+1]
			if strings.HasPrefix(next, " ") || strings.HasPrefix(next, "\t") {
				return strings.TrimSpace(next)
			}
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if desc := strings.TrimSpace(line); desc != "" {
				return desc
			}
		}
	}

	return ""
}
