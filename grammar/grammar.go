package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Model struct {
	Pos lexer.Position

	Outcome    *Outcome     `@@`
	Conditions []*Condition `[ "|" @@ { "," @@ } ]`
	Predictors []*Term      `"~" @@ { "+" @@ }`
}

type Outcome struct {
	Pos lexer.Position

	Group  []*TaggedPhenotype `  "[" @@ { "," @@ } "]"`
	Single *Variable          `| @@`
}

type TaggedPhenotype struct {
	Pos lexer.Position

	Tag  string     `@Ident "="`
	Phen *Phenotype `@@`
}

type Condition struct {
	Pos lexer.Position

	Subject *Variable `@@`
	Level   *int      `[ "=" @Int ]`
}

// Variable is a phenotype-or-genotype leaf, usable as an outcome,
// a condition subject, or an interaction member.
type Variable struct {
	Pos lexer.Position

	Genotype  *Genotype  `  @@`
	Phenotype *Phenotype `| @@`
}

type Phenotype struct {
	Pos lexer.Position

	Name string `@Ident`
}

type Genotype struct {
	Pos lexer.Position

	Variant string `"g" "(" @Ident ")"`
}

// Term is one additive predictor. Alternative order matters: the
// interaction form must be tried before the genotype/factor/plain
// forms, otherwise "x1 * x2" would commit to a plain phenotype "x1"
// and leave "* x2" unconsumed.
type Term struct {
	Pos lexer.Position

	SNPs        bool         `  @"SNPs"`
	Interaction *Interaction `| @@`
	Genotype    *Genotype    `| @@`
	Factor      *Factor      `| @@`
	Log         *Log         `| @@`
	Pow         *Pow         `| @@`
	Phenotype   *Phenotype   `| @@`
}

type Factor struct {
	Pos lexer.Position

	Phen  *Phenotype `"factor" "(" @@ ")"`
	Alias *string    `[ "as" @Ident ]`
}

type Log struct {
	Pos lexer.Position

	Func  string     `@( "ln" | "log10" )`
	Phen  *Phenotype `"(" @@ ")"`
	Alias *string    `[ "as" @Ident ]`
}

type Pow struct {
	Pos lexer.Position

	Phen  *Phenotype `"pow" "(" @@ ","`
	Power int        `@Int ")"`
	Alias *string    `[ "as" @Ident ]`
}

type Interaction struct {
	Pos lexer.Position

	Members []*InteractionMember `@@ "*" @@ { "*" @@ }`
	Alias   *string              `[ "as" @Ident ]`
}

// InteractionMember admits only leaf forms: a genotype, an unaliased
// factor, or a plain phenotype. Nested transforms and nested
// interactions are rejected by the grammar itself.
type InteractionMember struct {
	Pos lexer.Position

	Genotype  *Genotype  `  @@`
	Factor    *FactorRef `| @@`
	Phenotype *Phenotype `| @@`
}

// FactorRef is factor(name) without an alias clause; inside an
// interaction the trailing "as" binds to the interaction, not to a
// member.
type FactorRef struct {
	Pos lexer.Position

	Phen *Phenotype `"factor" "(" @@ ")"`
}
