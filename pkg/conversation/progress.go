package conversation

import (
	"fmt"
	"io"

	"github.com/sipeed/dialoguecast/pkg/dialogue"
)

// Progress receives per-line updates while a conversation is assembled.
type Progress interface {
	Start(total int)
	Step(done int, line dialogue.Line)
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(int)               {}
func (nopProgress) Step(int, dialogue.Line) {}
func (nopProgress) Finish()                 {}

// LineProgress rewrites a single status line on w, normally stderr, so that
// piped stdout is not affected.
type LineProgress struct {
	w     io.Writer
	label string
	total int
}

// NewLineProgress creates a progress line prefixed with label.
func NewLineProgress(w io.Writer, label string) *LineProgress {
	return &LineProgress{w: w, label: label}
}

func (p *LineProgress) Start(total int) {
	p.total = total
	fmt.Fprintf(p.w, "\r\033[K%s: 0/%d", p.label, total)
}

func (p *LineProgress) Step(done int, line dialogue.Line) {
	fmt.Fprintf(p.w, "\r\033[K%s: %d/%d [%s]", p.label, done, p.total, line.Speaker)
}

func (p *LineProgress) Finish() {
	fmt.Fprintln(p.w)
}
