package semantic

import (
	"fmt"

	"modelspec/grammar"
	"modelspec/internal/errors"
)

// Analyzer runs the post-parse checks a grammatically valid model can
// still fail: duplicate outcome tags, alias collisions, interaction
// arity, and dialect restrictions. It walks the tree once, left to
// right, and collects every diagnostic it finds.
type Analyzer struct {
	legacy bool
	errors []errors.CompilerError
}

// NewAnalyzer creates an analyzer for the full grammar.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// NewLegacyAnalyzer creates an analyzer that additionally rejects
// constructs outside the legacy grammar: labelled outcome groups,
// SNPs, and the pow/ln/log10 transforms.
func NewLegacyAnalyzer() *Analyzer {
	return &Analyzer{legacy: true}
}

// Analyze validates a model and returns all diagnostics in source
// order. A nil or empty result means the model is valid.
func (a *Analyzer) Analyze(model *grammar.Model) []errors.CompilerError {
	a.errors = nil
	a.analyzeOutcome(model.Outcome)
	a.analyzePredictors(model.Predictors)
	return a.errors
}

// GetErrors returns the diagnostics from the last Analyze call.
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

func (a *Analyzer) analyzeOutcome(outcome *grammar.Outcome) {
	if outcome.Group == nil {
		return
	}

	if a.legacy {
		a.addLegacyError("labelled outcome groups", position(outcome.Pos))
	}

	seen := make(map[string]bool)
	for _, tagged := range outcome.Group {
		if seen[tagged.Tag] {
			err := errors.NewSemanticError(errors.ErrorDuplicateOutcomeTag,
				fmt.Sprintf("duplicate outcome tag '%s'", tagged.Tag), position(tagged.Pos)).
				WithLength(len(tagged.Tag)).
				WithNote("each tag in a labelled outcome group names one slot and must be unique").
				Build()
			a.errors = append(a.errors, err)
		}
		seen[tagged.Tag] = true
	}
}

func (a *Analyzer) analyzePredictors(predictors []*grammar.Term) {
	// Column names claimed so far; the first occurrence wins and a
	// later alias reusing a claimed name is the error.
	seen := make(map[string]bool)

	for _, term := range predictors {
		if a.legacy {
			a.checkLegacyTerm(term)
		}

		if inter := term.Interaction; inter != nil && len(inter.Members) < 2 {
			err := errors.NewSemanticError(errors.ErrorInteractionArity,
				"interaction requires at least two members", position(inter.Pos)).
				Build()
			a.errors = append(a.errors, err)
		}

		if alias := termAlias(term); alias != nil {
			if seen[*alias] {
				err := errors.NewSemanticError(errors.ErrorDuplicateColumn,
					fmt.Sprintf("alias '%s' collides with an earlier predictor column", *alias), position(term.Pos)).
					WithHelp(fmt.Sprintf("pick an alias other than '%s'", *alias)).
					Build()
				a.errors = append(a.errors, err)
			}
			seen[*alias] = true
		}
		seen[BaseName(term)] = true
	}
}

func (a *Analyzer) checkLegacyTerm(term *grammar.Term) {
	switch {
	case term.SNPs:
		a.addLegacyError("the SNPs placeholder", position(term.Pos))
	case term.Log != nil:
		a.addLegacyError(term.Log.Func+" transforms", position(term.Pos))
	case term.Pow != nil:
		a.addLegacyError("pow transforms", position(term.Pos))
	}
}

func (a *Analyzer) addLegacyError(what string, pos grammar.Position) {
	err := errors.NewSemanticError(errors.ErrorLegacyDialect,
		fmt.Sprintf("%s are not available in the legacy grammar", what), pos).
		WithNote("re-run against the full grammar to use this construct").
		Build()
	a.errors = append(a.errors, err)
}
