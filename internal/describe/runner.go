package describe

import (
	"context"
	"os/exec"
	"time"
)

// CommandRunner executes an external tool with a hard timeout and
// returns its stdout. Implementations must return
// context.DeadlineExceeded when the timeout fires so retry logic can
// tell timeouts apart from hard failures.
type CommandRunner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error)
}

// execRunner is the production CommandRunner.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() == context.DeadlineExceeded {
		return "", context.DeadlineExceeded
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}
