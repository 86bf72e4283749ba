package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar_NonTTYOnlyPrintsCompletion(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(3, "Classifying folders")
	p.SetWriter(&buf)

	p.Increment()
	p.Increment()
	if buf.Len() != 0 {
		t.Errorf("non-TTY bar emitted before completion: %q", buf.String())
	}

	p.Increment()
	out := buf.String()
	if !strings.Contains(out, "100%") {
		t.Errorf("completion line missing: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected a single line, got %q", out)
	}

	// Finish after the last increment must not duplicate the line.
	p.Finish()
	if got := buf.String(); got != out {
		t.Errorf("Finish duplicated output: %q", got)
	}
}

func TestProgressBar_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(0, "nothing")
	p.SetWriter(&buf)
	p.Finish()
	// Zero-step pass completes without panicking and emits at most one
	// line.
	if strings.Count(buf.String(), "\n") > 1 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSpinner_NonTTYPrintsOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("Resolving description")
	s.SetWriter(&buf)

	s.Start()
	s.Stop()

	if got := buf.String(); got != "Resolving description...\n" {
		t.Errorf("spinner output = %q", got)
	}
}

func TestSpinner_StopWithMessage(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working")
	s.SetWriter(&buf)
	s.Start()
	s.StopWithMessage("done")

	if !strings.Contains(buf.String(), "done") {
		t.Errorf("final message missing: %q", buf.String())
	}
}
