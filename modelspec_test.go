package modelspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelspec"
	"modelspec/grammar"
)

func TestParseValidSpec(t *testing.T) {
	model, err := modelspec.Parse("y | diabetes = 0 ~ x1 + factor(x2) as grp")
	require.NoError(t, err)

	assert.Equal(t, "y", model.Outcome.Single.Phenotype.Name)
	require.Len(t, model.Conditions, 1)
	require.Len(t, model.Predictors, 2)
}

func TestParseSyntaxError(t *testing.T) {
	model, err := modelspec.Parse("y ~ ")
	require.Error(t, err)
	assert.Nil(t, model)

	var serr *grammar.SyntaxError
	require.ErrorAs(t, err, &serr)
}

func TestParseSemanticError(t *testing.T) {
	model, err := modelspec.Parse("[a=t, a=e] ~ x")
	require.Error(t, err)
	assert.Nil(t, model)

	var serr *modelspec.SemanticError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "E0001", serr.Code)
	assert.Contains(t, serr.Detail, "duplicate outcome tag")
}

func TestParseLegacyRejectsSupersetConstructs(t *testing.T) {
	_, err := modelspec.ParseLegacy("y ~ SNPs")
	var serr *modelspec.SemanticError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "E0004", serr.Code)

	model, err := modelspec.ParseLegacy("y | male ~ x1 * x2")
	require.NoError(t, err)
	require.NotNil(t, model.Predictors[0].Interaction)
}

func TestFormatAndTranslations(t *testing.T) {
	const spec = "y ~ SNPs + factor(grp) as g + g(rs1) * sex"

	model, err := modelspec.Parse(spec)
	require.NoError(t, err)

	assert.Equal(t, spec, modelspec.Format(model))
	assert.Equal(t, map[string]string{
		"SNPs":         "SNPs",
		"factor(grp)":  "g",
		"g(rs1) * sex": "g(rs1) * sex",
	}, modelspec.Translations(model))
}

func TestParseIsDeterministic(t *testing.T) {
	const spec = "[tte=t, event=e] | g(rs1) = 1 ~ SNPs + pow(age, 2) as age2"

	first, err := modelspec.Parse(spec)
	require.NoError(t, err)
	second, err := modelspec.Parse(spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
