package errors

// Error codes for the model-spec toolchain, used in diagnostics and
// documentation so errors stay identifiable across CLI, REPL and LSP.
//
// Ranges:
// E0001-E0099: semantic analysis errors
// E0100-E0199: parser errors
const (
	// E0001: duplicate tag in a labelled outcome group
	ErrorDuplicateOutcomeTag = "E0001"

	// E0002: alias collides with an earlier column name or alias
	ErrorDuplicateColumn = "E0002"

	// E0003: interaction with fewer than two members
	ErrorInteractionArity = "E0003"

	// E0004: construct not available in the legacy dialect
	ErrorLegacyDialect = "E0004"

	// E0100: generic syntax error reported by the parser
	ErrorSyntax = "E0100"
)
