// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmoreno/resume-wizard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxLinesToShow is the default number of lines to display per section
	maxLinesToShow = 4
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSegmentation outputs a human-readable summary of a segmented resume.
func (p *Printer) PrintSegmentation(doc *types.SegmentedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name: %s\n", doc.CandidateName))
	for _, key := range doc.Order {
		lines := doc.Lines(key)
		sb.WriteString(fmt.Sprintf("\n[%s] %d lines\n", strings.ToUpper(string(key)), len(lines)))
		for i, line := range lines {
			if i >= maxLinesToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-maxLinesToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}
	p.printBox("Segmented Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintLayout outputs per-page command counts for a computed layout.
func (p *Printer) PrintLayout(pd *types.PageDescription) {
	if pd == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page size: %.0fx%.0f mm, margin %.0f mm\n",
		pd.Metadata.WidthMM, pd.Metadata.HeightMM, pd.Metadata.MarginMM))
	for _, page := range pd.Pages {
		counts := map[types.DrawOp]int{}
		for _, cmd := range page.Commands {
			counts[cmd.Op]++
		}
		sb.WriteString(fmt.Sprintf("Page %d: %d text, %d rect, %d line, %d image\n",
			page.PageIndex+1, counts[types.OpText], counts[types.OpRect],
			counts[types.OpLine], counts[types.OpImage]))
	}
	p.printBox("Layout", strings.TrimRight(sb.String(), "\n"))
}

// PrintReport outputs a compatibility verdict.
func (p *Printer) PrintReport(report *types.CompatibilityReport) {
	if report == nil {
		return
	}
	content := fmt.Sprintf("Score: %d/100\n\n%s", report.Score, report.Explanation)
	p.printBox("Compatibility", content)
}
