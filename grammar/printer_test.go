package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelspec/grammar"
)

// Canonically spaced specs must survive a parse/format round trip
// byte for byte.
func TestFormatRoundTrip(t *testing.T) {
	specs := []string{
		"y ~ x1 + x2",
		"y ~ x1 * x2",
		"y ~ x1 * x2 as int1",
		"y | male ~ x",
		"y | diabetes = 0 ~ x",
		"y | g(rs12345) = 2, male ~ x + g(rs6789)",
		"y ~ factor(x) as z",
		"y ~ ln(a) + log10(b) as lb + pow(c, 3) as c3",
		"y ~ SNPs + age + factor(grp)",
		"[tte=t, event=e] ~ x + y",
		"g(rs42) ~ pc1 + pc2",
		"y ~ g(rs1) * factor(grp) * age as gxe",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			model := mustParse(t, spec)
			assert.Equal(t, spec, model.String())
		})
	}
}

// Formatting normalizes whitespace but never changes structure.
func TestFormatNormalizesWhitespace(t *testing.T) {
	model := mustParse(t, "  y|diabetes=0~x1+factor( x2 )as z ")
	assert.Equal(t, "y | diabetes = 0 ~ x1 + factor(x2) as z", model.String())

	reparsed := mustParse(t, model.String())
	assert.Equal(t, model.String(), reparsed.String())
}

func TestEBNFIsNonEmpty(t *testing.T) {
	ebnf := grammar.EBNF()
	require.NotEmpty(t, ebnf)
	assert.Contains(t, ebnf, "Model")
}
