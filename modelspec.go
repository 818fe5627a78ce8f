// Package modelspec parses statistical model specifications such as
// "y | diabetes = 0 ~ x1 + factor(x2) as grp" into a validated AST
// that downstream analysis code can turn into design matrices and
// sample strata.
package modelspec

import (
	"fmt"

	"modelspec/grammar"
	"modelspec/internal/semantic"
)

// SemanticError reports a grammatically valid specification that is
// structurally invalid, such as a duplicate outcome tag or an alias
// reusing an earlier column name.
type SemanticError struct {
	Code   string
	Detail string
	Pos    grammar.Position
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Parse parses and validates a model specification against the full
// grammar. On failure it returns either a *grammar.SyntaxError or a
// *SemanticError, never a partial model.
func Parse(input string) (*grammar.Model, error) {
	return parseWith(semantic.NewAnalyzer(), input)
}

// ParseLegacy parses against the legacy dialect, which has no
// labelled outcome groups, no SNPs placeholder, and no pow/ln/log10
// transforms.
func ParseLegacy(input string) (*grammar.Model, error) {
	return parseWith(semantic.NewLegacyAnalyzer(), input)
}

// Format renders a model in canonical form; Format(Parse(s)) equals s
// for canonically spaced input.
func Format(model *grammar.Model) string {
	return model.String()
}

// Translations maps each predictor's canonical column name to its
// display name (the alias when one was given), for labelling results.
func Translations(model *grammar.Model) map[string]string {
	return semantic.Translations(model)
}

func parseWith(analyzer *semantic.Analyzer, input string) (*grammar.Model, error) {
	model, err := grammar.Parse("", input)
	if err != nil {
		return nil, err
	}
	if errs := analyzer.Analyze(model); len(errs) > 0 {
		first := errs[0]
		return nil, &SemanticError{Code: first.Code, Detail: first.Message, Pos: first.Position}
	}
	return model, nil
}
