// Package repl implements an interactive model-spec checker: each
// line is parsed and analyzed, then echoed back in canonical form
// together with its predictor columns.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"modelspec/grammar"
	"modelspec/internal/errors"
	"modelspec/internal/semantic"
)

const PROMPT = "spec> "

// Start runs the read-check-print loop until EOF or "exit".
func Start(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "modelspec checker; type a model specification, or \"exit\" to leave")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		check(out, line)
	}
}

func check(out io.Writer, line string) {
	reporter := errors.NewErrorReporter("repl", line)

	model, err := grammar.Parse("repl", line)
	if err != nil {
		if serr, ok := err.(*grammar.SyntaxError); ok {
			fmt.Fprint(out, reporter.FormatError(errors.NewSyntaxError(serr)))
		} else {
			color.Red("unexpected error: %s", err)
		}
		return
	}

	if errs := semantic.NewAnalyzer().Analyze(model); len(errs) > 0 {
		fmt.Fprint(out, reporter.FormatErrors(errs))
		return
	}

	fmt.Fprintln(out, model)
	fmt.Fprintf(out, "columns: %s\n", strings.Join(semantic.Columns(model), ", "))
}
