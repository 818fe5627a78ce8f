package errors

import (
	"modelspec/grammar"
)

// ErrorLevel represents the severity of a diagnostic.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// CompilerError is a structured diagnostic with a stable code and a
// source position, the unit every tool surface (CLI, REPL, LSP)
// consumes.
type CompilerError struct {
	Level    ErrorLevel
	Code     string           // error code like E0001
	Message  string           // primary message
	Position grammar.Position // location in the spec text
	Length   int              // length of the problematic region
	Notes    []string         // additional context notes
	HelpText string           // help text for the error
}

func (e CompilerError) Error() string {
	return e.Message
}

// Builder provides a fluent way to assemble diagnostics.
type Builder struct {
	err CompilerError
}

// NewSemanticError starts a semantic error diagnostic.
func NewSemanticError(code, message string, pos grammar.Position) *Builder {
	return &Builder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSyntaxError converts a parser failure into a diagnostic.
func NewSyntaxError(serr *grammar.SyntaxError) CompilerError {
	msg := serr.Message
	if serr.Expected != "" {
		if serr.Found != "" {
			msg = "unexpected " + quote(serr.Found) + " (expected " + serr.Expected + ")"
		} else {
			msg = "unexpected end of input (expected " + serr.Expected + ")"
		}
	}
	length := len(serr.Found)
	if length == 0 {
		length = 1
	}
	return CompilerError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  msg,
		Position: serr.Pos,
		Length:   length,
	}
}

func (b *Builder) WithLength(length int) *Builder {
	b.err.Length = length
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *Builder) WithHelp(help string) *Builder {
	b.err.HelpText = help
	return b
}

func (b *Builder) Build() CompilerError {
	return b.err
}

func quote(s string) string {
	return "'" + s + "'"
}
