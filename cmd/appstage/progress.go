package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
)

// writerIsTTY reports whether the writer is backed by a terminal. Plain
// io.Writer values such as *bytes.Buffer report false.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// progressBar renders install progress on one line:
// [=========>          ]  45% Copying bundle (12/27)
// On a TTY the line is redrawn in place; elsewhere only step transitions
// are printed so piped output stays readable.
type progressBar struct {
	writer   io.Writer
	width    int
	lastLine string
	lastMsg  string
	tty      bool
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{writer: w, width: 30, tty: writerIsTTY(w)}
}

// Update redraws the bar for the given progress tuple. Calls with the same
// rendered content are deduplicated.
func (p *progressBar) Update(current, total int, message string) {
	if total <= 0 {
		return
	}
	if current > total {
		current = total
	}

	if !p.tty {
		if message != p.lastMsg && message != "" {
			fmt.Fprintf(p.writer, "[%d/%d] %s\n", current, total, message)
			p.lastMsg = message
		}
		return
	}

	percentage := (current * 100) / total
	filled := (current * p.width) / total

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.width; i++ {
		switch {
		case i < filled-1:
			bar.WriteString("=")
		case i == filled-1:
			bar.WriteString(">")
		default:
			bar.WriteString(" ")
		}
	}
	bar.WriteString("]")

	line := fmt.Sprintf("%s %3d%% %s", bar.String(), percentage, message)
	if line == p.lastLine {
		return
	}
	// Pad with spaces so a shorter line fully overwrites the previous one.
	pad := len(p.lastLine) - len(line)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.writer, "\r%s%s", line, strings.Repeat(" ", pad))
	p.lastLine = line
}

// Finish terminates the in-place line on a TTY.
func (p *progressBar) Finish() {
	if p.tty && p.lastLine != "" {
		fmt.Fprintln(p.writer)
	}
}
