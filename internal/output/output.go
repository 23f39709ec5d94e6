// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Styles used when color is enabled.
var (
	styleBold    = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Faint(true)
	styleRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleGreen   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleYellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// paint renders s with style when color is enabled.
func (w *Writer) paint(style lipgloss.Style, s string) string {
	if !w.color {
		return s
	}
	return style.Render(s)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", fmt.Sprintf(format, args...))
}

// Action prints what the CLI is doing (skipped in quiet mode).
func (w *Writer) Action(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", w.paint(styleCyan, fmt.Sprintf(format, args...)))
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s %s", w.paint(styleYellow, "warning:"), fmt.Sprintf(format, args...))
}

// ErrorPrefix prints an error message with the triage prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	w.Errorln("%s %s", w.paint(styleRed, "triage:"), fmt.Sprintf(format, args...))
}

// Hint prints a hint message for the user to stderr.
func (w *Writer) Hint(format string, args ...interface{}) {
	w.Errorln("%s", w.paint(styleDim, fmt.Sprintf(format, args...)))
}

// SummaryHeader prints a summary section header.
func (w *Writer) SummaryHeader(title string) {
	if w.quiet {
		return
	}
	w.Println("")
	w.Println("%s", w.paint(styleHeading, "=== "+title+" ==="))
	w.Println("")
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	if w.quiet {
		return
	}
	w.Println("  %s %s", w.paint(styleDim, label+":"), value)
}

// SummaryFailed prints a summary item whose value signals problems.
func (w *Writer) SummaryFailed(label, value string) {
	if w.quiet {
		return
	}
	w.Println("  %s %s", w.paint(styleDim, label+":"), w.paint(styleRed, value))
}

// SummarySectionLabel prints a label for a summary section (e.g., "Artifacts:").
func (w *Writer) SummarySectionLabel(label string) {
	if w.quiet {
		return
	}
	w.Println("  %s", w.paint(styleBold, label))
}

// StepDetail prints an indented detail line under a step.
func (w *Writer) StepDetail(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("     %s", w.paint(styleDim, "- "+fmt.Sprintf(format, args...)))
}

// Badge renders label on a background of the given RGB hex color (no '#').
// Without color the label is wrapped in brackets.
func (w *Writer) Badge(label, hexColor string) string {
	if !w.color {
		return "[" + label + "]"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#" + hexColor)).
		Padding(0, 1).
		Render(label)
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.paint(styleGreen.Bold(true), fmt.Sprintf(format, args...)))
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	if w.quiet {
		return
	}
	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-lipgloss.Width(s))
	}

	var headerParts []string
	for i, h := range headers {
		headerParts = append(headerParts, pad(h, widths[i]))
	}
	w.Println("  %s", w.paint(styleBold, strings.TrimRight(strings.Join(headerParts, "  "), " ")))

	var sepParts []string
	for _, width := range widths {
		sepParts = append(sepParts, strings.Repeat("-", width))
	}
	w.Println("  %s", strings.Join(sepParts, "  "))

	for _, row := range rows {
		var rowParts []string
		for i, cell := range row {
			if i < len(widths) {
				rowParts = append(rowParts, pad(cell, widths[i]))
			}
		}
		w.Println("  %s", strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
