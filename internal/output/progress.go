package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// writerIsTTY returns true if w exposes an Fd() method and that fd is a
// terminal. Plain io.Writer values such as *bytes.Buffer are never TTYs.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// ProgressBar displays a progress bar with a count and description.
// Example: [=========>          ]  45/90 Generating sample days
type ProgressBar struct {
	total       int
	current     int
	description string
	width       int
	printed     bool // non-TTY completion line written
	mu          sync.Mutex
	writer      io.Writer
}

// NewProgress creates a new progress bar writing to stderr.
func NewProgress(total int, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		description: description,
		width:       30,
		writer:      os.Stderr,
	}
}

// SetWriter sets the output writer (useful for testing).
func (p *ProgressBar) SetWriter(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = w
}

// Increment advances the bar by one step and redraws it.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current < p.total {
		p.current++
	}
	p.render()
}

// Finish completes the bar and moves to a new line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = p.total

	if writerIsTTY(p.writer) {
		p.render()
		fmt.Fprintln(p.writer)
		return
	}
	// Non-TTY output only draws the final state, once.
	if !p.printed {
		p.render()
	}
}

// render draws the bar. Must be called with the lock held.
func (p *ProgressBar) render() {
	filled := 0
	if p.total > 0 {
		filled = p.current * p.width / p.total
	}

	bar := strings.Repeat("=", filled)
	if filled > 0 && filled < p.width {
		bar = bar[:filled-1] + ">"
	}
	bar += strings.Repeat(" ", p.width-filled)

	digits := len(fmt.Sprint(p.total))
	line := fmt.Sprintf("[%s] %*d/%d %s", bar, digits, p.current, p.total, p.description)

	if writerIsTTY(p.writer) {
		fmt.Fprintf(p.writer, "\r%s", line)
		return
	}
	if p.current == p.total && !p.printed {
		fmt.Fprintln(p.writer, line)
		p.printed = true
	}
}
