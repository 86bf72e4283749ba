package describe

import (
	"context"
	"errors"
	"time"
)

const (
	aurTimeout     = 8 * time.Second
	aurAttempts    = 2
	aurBackoffBase = 500 * time.Millisecond
)

// aurHelpers are the known AUR helper binaries, in preference order.
var aurHelpers = []string{"yay", "paru"}

// aurHelper returns the first AUR helper found on $PATH, or "".
func (r *Resolver) aurHelper() string {
	for _, name := range aurHelpers {
		if _, err := r.look(name); err == nil {
			return name
		}
	}
	return ""
}

// aurDescription queries the AUR helper's info output for name. The
// helper is unreliable enough to deserve retries: up to aurAttempts
// tries with a doubling backoff between them. A timeout counts as a
// failed attempt; any other error aborts immediately. Backoff state
// lives only inside this call, never across resolutions.
func (r *Resolver) aurDescription(ctx context.Context, name string) string {
	helper := r.aurHelper()
	if helper == "" {
		return ""
	}

	delay := aurBackoffBase
	for attempt := 0; attempt < aurAttempts; attempt++ {
		out, err := r.run.Run(ctx, aurTimeout, helper, "-Si", name)
		if err == nil {
			if desc := parseDescriptionField(out); desc != "" {
				return desc
			}
		} else if !errors.Is(err, context.DeadlineExceeded) {
			return ""
		}

		if attempt < aurAttempts-1 {
			r.sleep(delay)
			delay *= 2
		}
	}

	return ""
}
