package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelspec/grammar"
)

func mustParse(t *testing.T, input string) *grammar.Model {
	t.Helper()
	model, err := grammar.Parse("test.spec", input)
	require.NoError(t, err, "parse of %q", input)
	require.NotNil(t, model)
	return model
}

func TestSimpleModel(t *testing.T) {
	model := mustParse(t, "y ~ x1 + x2")

	require.NotNil(t, model.Outcome.Single)
	require.NotNil(t, model.Outcome.Single.Phenotype)
	assert.Equal(t, "y", model.Outcome.Single.Phenotype.Name)
	assert.Empty(t, model.Conditions)

	require.Len(t, model.Predictors, 2)
	assert.Equal(t, "x1", model.Predictors[0].Phenotype.Name)
	assert.Equal(t, "x2", model.Predictors[1].Phenotype.Name)
}

func TestInteractionBeatsPlainPhenotype(t *testing.T) {
	model := mustParse(t, "y ~ x1 * x2")

	require.Len(t, model.Predictors, 1)
	inter := model.Predictors[0].Interaction
	require.NotNil(t, inter, "x1 * x2 must parse as one interaction, not a plain term")
	require.Len(t, inter.Members, 2)
	assert.Equal(t, "x1", inter.Members[0].Phenotype.Name)
	assert.Equal(t, "x2", inter.Members[1].Phenotype.Name)
	assert.Nil(t, inter.Alias)
}

func TestInteractionMembersAndAlias(t *testing.T) {
	model := mustParse(t, "y ~ g(rs12345) * factor(grp) * age as gxe")

	require.Len(t, model.Predictors, 1)
	inter := model.Predictors[0].Interaction
	require.NotNil(t, inter)
	require.Len(t, inter.Members, 3)
	assert.Equal(t, "rs12345", inter.Members[0].Genotype.Variant)
	assert.Equal(t, "grp", inter.Members[1].Factor.Phen.Name)
	assert.Equal(t, "age", inter.Members[2].Phenotype.Name)
	require.NotNil(t, inter.Alias)
	assert.Equal(t, "gxe", *inter.Alias)
}

func TestConditionWithoutLevel(t *testing.T) {
	model := mustParse(t, "y | male ~ x")

	require.Len(t, model.Conditions, 1)
	cond := model.Conditions[0]
	assert.Equal(t, "male", cond.Subject.Phenotype.Name)
	assert.Nil(t, cond.Level)

	require.Len(t, model.Predictors, 1)
	assert.Equal(t, "x", model.Predictors[0].Phenotype.Name)
}

func TestConditionWithLevel(t *testing.T) {
	model := mustParse(t, "y | diabetes = 0 ~ x")

	require.Len(t, model.Conditions, 1)
	cond := model.Conditions[0]
	assert.Equal(t, "diabetes", cond.Subject.Phenotype.Name)
	require.NotNil(t, cond.Level)
	assert.Equal(t, 0, *cond.Level)
}

func TestGenotypeCondition(t *testing.T) {
	model := mustParse(t, "y | g(rs12345) = 2, male ~ x")

	require.Len(t, model.Conditions, 2)
	assert.Equal(t, "rs12345", model.Conditions[0].Subject.Genotype.Variant)
	require.NotNil(t, model.Conditions[0].Level)
	assert.Equal(t, 2, *model.Conditions[0].Level)
	assert.Equal(t, "male", model.Conditions[1].Subject.Phenotype.Name)
	assert.Nil(t, model.Conditions[1].Level)
}

func TestFactorWithAlias(t *testing.T) {
	model := mustParse(t, "y ~ factor(x) as z")

	require.Len(t, model.Predictors, 1)
	factor := model.Predictors[0].Factor
	require.NotNil(t, factor)
	assert.Equal(t, "x", factor.Phen.Name)
	require.NotNil(t, factor.Alias)
	assert.Equal(t, "z", *factor.Alias)
}

func TestTransformTerms(t *testing.T) {
	model := mustParse(t, "y ~ ln(a) + log10(b) as lb + pow(c, 2)")

	require.Len(t, model.Predictors, 3)

	ln := model.Predictors[0].Log
	require.NotNil(t, ln)
	assert.Equal(t, "ln", ln.Func)
	assert.Equal(t, "a", ln.Phen.Name)
	assert.Nil(t, ln.Alias)

	log10 := model.Predictors[1].Log
	require.NotNil(t, log10)
	assert.Equal(t, "log10", log10.Func)
	require.NotNil(t, log10.Alias)
	assert.Equal(t, "lb", *log10.Alias)

	pow := model.Predictors[2].Pow
	require.NotNil(t, pow)
	assert.Equal(t, "c", pow.Phen.Name)
	assert.Equal(t, 2, pow.Power)
}

func TestSNPsPlaceholder(t *testing.T) {
	model := mustParse(t, "y ~ SNPs + age")

	require.Len(t, model.Predictors, 2)
	assert.True(t, model.Predictors[0].SNPs)
	assert.Equal(t, "age", model.Predictors[1].Phenotype.Name)
}

func TestLabelledOutcomeGroup(t *testing.T) {
	model := mustParse(t, "[tte=t, event=e] ~ x + y")

	require.Nil(t, model.Outcome.Single)
	require.Len(t, model.Outcome.Group, 2)
	assert.Equal(t, "tte", model.Outcome.Group[0].Tag)
	assert.Equal(t, "t", model.Outcome.Group[0].Phen.Name)
	assert.Equal(t, "event", model.Outcome.Group[1].Tag)
	assert.Equal(t, "e", model.Outcome.Group[1].Phen.Name)

	require.Len(t, model.Predictors, 2)
	assert.Equal(t, "x", model.Predictors[0].Phenotype.Name)
	assert.Equal(t, "y", model.Predictors[1].Phenotype.Name)
}

func TestGenotypeOutcome(t *testing.T) {
	model := mustParse(t, "g(rs42) ~ pc1 + pc2")

	require.NotNil(t, model.Outcome.Single)
	require.NotNil(t, model.Outcome.Single.Genotype)
	assert.Equal(t, "rs42", model.Outcome.Single.Genotype.Variant)
}

func TestColonInVariantName(t *testing.T) {
	model := mustParse(t, "y ~ g(chr1:12345)")

	require.Len(t, model.Predictors, 1)
	assert.Equal(t, "chr1:12345", model.Predictors[0].Genotype.Variant)
}

func TestKeywordLikePhenotypeNames(t *testing.T) {
	// "ln" without a following "(" is just a phenotype called ln.
	model := mustParse(t, "y ~ ln + pow")

	require.Len(t, model.Predictors, 2)
	assert.Equal(t, "ln", model.Predictors[0].Phenotype.Name)
	assert.Equal(t, "pow", model.Predictors[1].Phenotype.Name)
}

func TestFactorBeforeInteractionDisambiguation(t *testing.T) {
	// factor(x) followed by "as" must parse as a factor term, while
	// factor(x) followed by "*" must parse as an interaction member.
	model := mustParse(t, "y ~ factor(x) * z + factor(x) as fx")

	require.Len(t, model.Predictors, 2)
	require.NotNil(t, model.Predictors[0].Interaction)
	require.NotNil(t, model.Predictors[1].Factor)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing predictors", "y ~ "},
		{"missing tilde", "y x1 + x2"},
		{"trailing garbage", "y ~ x1 extra"},
		{"dangling plus", "y ~ x1 +"},
		{"dangling star", "y ~ x1 *"},
		{"unclosed genotype", "y ~ g(rs1"},
		{"empty condition", "y | ~ x"},
		{"negative level", "y | d = -1 ~ x"},
		{"decimal power", "y ~ pow(x, 2.5)"},
		{"empty outcome group", "[] ~ x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := grammar.Parse("test.spec", tc.input)
			require.Error(t, err)
			assert.Nil(t, model, "no partial model on error")

			serr, ok := err.(*grammar.SyntaxError)
			require.True(t, ok, "expected *SyntaxError, got %T: %v", err, err)
			assert.GreaterOrEqual(t, serr.Pos.Line, 1)
		})
	}
}

func TestParseIsPure(t *testing.T) {
	const input = "y | g(rs1) = 1 ~ SNPs + factor(a) * b as ab + ln(c)"

	first := mustParse(t, input)
	second := mustParse(t, input)
	assert.Equal(t, first, second)
}
