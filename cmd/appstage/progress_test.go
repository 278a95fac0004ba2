package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBarNonTTY(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf)

	bar.Update(0, 5, "Copy files")
	bar.Update(0, 5, "Copy files") // same message, deduplicated
	bar.Update(1, 5, "Resolve entry point")
	bar.Update(5, 5, "Complete")
	bar.Finish()

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "[0/5] Copy files" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[2] != "[5/5] Complete" {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestProgressBarIgnoresZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf)
	bar.Update(0, 0, "nothing yet")
	bar.Finish()
	if buf.Len() != 0 {
		t.Errorf("output = %q, want none", buf.String())
	}
}

func TestProgressBarClampsOverflow(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf)
	bar.Update(7, 5, "done")
	if !strings.Contains(buf.String(), "[5/5]") {
		t.Errorf("output = %q, want clamped to total", buf.String())
	}
}
