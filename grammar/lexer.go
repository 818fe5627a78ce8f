package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SpecLexer tokenizes model specifications such as
// "y | diabetes = 0 ~ x1 + factor(x2) as grp".
//
// Identifiers may contain letters, digits, underscores and colons
// (variant names like "chr1:12345" are common), but must contain at
// least one non-digit so that condition levels and powers lex as Int.
var SpecLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Identifiers (order matters: a pure digit run falls through to Int)
		{"Ident", `[0-9]*[A-Za-z_:][A-Za-z0-9_:]*`, nil},

		// Integer literals (condition levels, pow exponents)
		{"Int", `[0-9]+`, nil},

		// Punctuation
		{"Punct", `[~|+*,=()\[\]]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
