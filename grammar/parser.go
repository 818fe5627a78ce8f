package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// The interaction alternative needs to look past "factor ( name )" to
// the "*" that distinguishes it from a standalone factor term, so the
// lookahead window has to cover at least five tokens.
var parser = participle.MustBuild[Model](
	participle.Lexer(SpecLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(8),
)

// SyntaxError reports input that does not conform to the grammar.
type SyntaxError struct {
	Pos      Position
	Expected string
	Found    string
	Message  string
}

// Position is a location in the spec text. Offset is the byte offset
// from the start of the input; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Expected != "" && e.Found != "" {
		return fmt.Sprintf("%d:%d: unexpected %q (expected %s)", e.Pos.Line, e.Pos.Column, e.Found, e.Expected)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parse parses a single model specification. name identifies the
// source in error positions (a filename, or "" for ad-hoc strings).
// On failure it returns a *SyntaxError and no model.
func Parse(name, input string) (*Model, error) {
	model, err := parser.ParseString(name, input)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return model, nil
}

// EBNF renders the grammar the parser was built from, mostly useful
// for documentation and debugging.
func EBNF() string {
	return parser.String()
}

func wrapParseError(err error) error {
	perr, ok := err.(participle.Error)
	if !ok {
		return err
	}

	pos := perr.Position()
	serr := &SyntaxError{
		Pos:     Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column},
		Message: perr.Message(),
	}

	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		serr.Expected = unexpected.Expect
		serr.Found = unexpected.Unexpected.Value
	}
	return serr
}
