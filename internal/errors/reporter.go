package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorReporter formats diagnostics against the source they came
// from, Rust-style: a coded header, the offending line, and a caret
// marker under the problematic span.
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a reporter for one source text.
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders a single diagnostic.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0001]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	line, column := err.Position.Line, err.Position.Column
	lineNumberWidth := max(3, len(fmt.Sprintf("%d", line)))
	indent := strings.Repeat(" ", lineNumberWidth)

	// Location: --> filename:line:column
	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, line, column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Offending line with caret marker
	if line >= 1 && line <= len(er.lines) {
		content := er.lines[line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, line)), dim("│"), content))

		marker := strings.Repeat(" ", max(0, column-1)) +
			strings.Repeat("^", max(1, err.Length))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), levelColor(marker)))
	}

	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s note: %s\n", indent, dim("="), note))
	}
	if err.HelpText != "" {
		result.WriteString(fmt.Sprintf("%s %s help: %s\n", indent, dim("="), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatErrors renders a batch of diagnostics in order.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
	}
	return result.String()
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(a ...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
