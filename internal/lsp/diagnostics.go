package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"modelspec/grammar"
	"modelspec/internal/errors"
	"modelspec/internal/semantic"
)

// CheckDocument parses and analyzes a spec document and returns LSP
// diagnostics. A document holds one model specification per line;
// blank lines and lines starting with '#' are ignored.
func CheckDocument(text string) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for lineNo, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		model, err := grammar.Parse("", line)
		if err != nil {
			if serr, ok := err.(*grammar.SyntaxError); ok {
				diagnostics = append(diagnostics, syntaxDiagnostic(lineNo, serr))
			}
			continue
		}

		analyzer := semantic.NewAnalyzer()
		for _, cerr := range analyzer.Analyze(model) {
			diagnostics = append(diagnostics, semanticDiagnostic(lineNo, cerr))
		}
	}

	return diagnostics
}

// syntaxDiagnostic places a parser error on its document line. The
// parser sees a single line, so its own line number is always 1 and
// only the column carries information.
func syntaxDiagnostic(lineNo int, serr *grammar.SyntaxError) protocol.Diagnostic {
	start := uint32(max(0, serr.Pos.Column-1))
	end := start + uint32(max(1, len(serr.Found)))

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(lineNo), Character: start},
			End:   protocol.Position{Line: uint32(lineNo), Character: end},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("modelspec"),
		Code:     &protocol.IntegerOrString{Value: errors.ErrorSyntax},
		Message:  serr.Error(),
	}
}

func semanticDiagnostic(lineNo int, cerr errors.CompilerError) protocol.Diagnostic {
	start := uint32(max(0, cerr.Position.Column-1))
	end := start + uint32(max(1, cerr.Length))

	severity := protocol.DiagnosticSeverityError
	if cerr.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(lineNo), Character: start},
			End:   protocol.Position{Line: uint32(lineNo), Character: end},
		},
		Severity: ptrSeverity(severity),
		Source:   ptrString("modelspec"),
		Code:     &protocol.IntegerOrString{Value: cerr.Code},
		Message:  cerr.Message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
