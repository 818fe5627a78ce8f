package semantic

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"modelspec/grammar"
)

// BaseName is the canonical identifier of a predictor term, ignoring
// any alias: the name a downstream design matrix would use when the
// modeller did not rename the column.
func BaseName(term *grammar.Term) string {
	switch {
	case term.SNPs:
		return "SNPs"
	case term.Interaction != nil:
		parts := make([]string, len(term.Interaction.Members))
		for i, m := range term.Interaction.Members {
			parts[i] = m.String()
		}
		return strings.Join(parts, " * ")
	case term.Genotype != nil:
		return term.Genotype.String()
	case term.Factor != nil:
		return "factor(" + term.Factor.Phen.Name + ")"
	case term.Log != nil:
		return term.Log.Func + "(" + term.Log.Phen.Name + ")"
	case term.Pow != nil:
		return fmt.Sprintf("pow(%s, %d)", term.Pow.Phen.Name, term.Pow.Power)
	case term.Phenotype != nil:
		return term.Phenotype.Name
	}
	return ""
}

// DisplayName is the name a report should show for a term: the alias
// when one was given, the canonical name otherwise.
func DisplayName(term *grammar.Term) string {
	if alias := termAlias(term); alias != nil {
		return *alias
	}
	return BaseName(term)
}

// Columns lists the display names of all predictor columns in source
// order.
func Columns(model *grammar.Model) []string {
	columns := make([]string, len(model.Predictors))
	for i, term := range model.Predictors {
		columns[i] = DisplayName(term)
	}
	return columns
}

// Translations maps each predictor's canonical name to its display
// name, so result writers can label columns the way the modeller
// asked for.
func Translations(model *grammar.Model) map[string]string {
	translations := make(map[string]string, len(model.Predictors))
	for _, term := range model.Predictors {
		translations[BaseName(term)] = DisplayName(term)
	}
	return translations
}

func termAlias(term *grammar.Term) *string {
	switch {
	case term.Interaction != nil:
		return term.Interaction.Alias
	case term.Factor != nil:
		return term.Factor.Alias
	case term.Log != nil:
		return term.Log.Alias
	case term.Pow != nil:
		return term.Pow.Alias
	}
	return nil
}

func position(pos lexer.Position) grammar.Position {
	return grammar.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}
