// Package render is the out-of-core consumer that turns a
// core.ProjectAnalysis (and the progress/error events the orchestrator
// emits along the way) into terminal output. Modeled on the teacher's
// internal/progress SimpleHandler: one line per event, gated by a writer
// and a color/tty decision made once at construction.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bytesradar/bytesradar/internal/core"
)

// Progress implements core.ProgressSink with colorized one-line updates,
// following the teacher's [TAG] prefix convention.
type Progress struct {
	writer    io.Writer
	colorize  bool
	start     time.Time
	lastFiles uint64
}

// NewProgress builds a Progress sink writing to w. Color is only enabled
// when w is a terminal, matching the teacher's own use of
// github.com/mattn/go-isatty to gate ANSI output.
func NewProgress(w io.Writer) *Progress {
	colorize := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Progress{writer: w, colorize: colorize, start: time.Now()}
}

func (p *Progress) OnProgress(bytesReadSoFar uint64, totalBytesIfKnown int64, filesSoFar uint64, currentPath string) {
	if filesSoFar == p.lastFiles {
		return
	}
	p.lastFiles = filesSoFar

	tag := p.tag("[SCAN]", color.FgCyan)
	sizeStr := humanize.Bytes(bytesReadSoFar)
	if totalBytesIfKnown > 0 {
		fmt.Fprintf(p.writer, "%s %s / %s — %d files — %s\n", tag, sizeStr,
			humanize.Bytes(uint64(totalBytesIfKnown)), filesSoFar, currentPath)
		return
	}
	fmt.Fprintf(p.writer, "%s %s — %d files — %s\n", tag, sizeStr, filesSoFar, currentPath)
}

func (p *Progress) OnComplete(analysis *core.ProjectAnalysis) {
	tag := p.tag("[DONE]", color.FgGreen)
	s := analysis.Summary()
	fmt.Fprintf(p.writer, "%s %s: %d files, %d lines across %d languages in %s\n",
		tag, analysis.ProjectName, s.TotalFiles, s.TotalLines, s.LanguageCount, time.Since(p.start).Round(time.Millisecond))
}

func (p *Progress) OnError(err *core.Error) {
	tag := p.tag("[FAIL]", color.FgRed)
	fmt.Fprintf(p.writer, "%s %s\n", tag, err.Error())
}

func (p *Progress) tag(label string, c color.Attribute) string {
	if !p.colorize {
		return label
	}
	return color.New(c).Sprint(label)
}
