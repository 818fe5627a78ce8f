// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"modelspec/grammar"
	"modelspec/internal/errors"
	"modelspec/internal/semantic"
	"modelspec/repl"
)

var (
	legacy   = flag.Bool("legacy", false, "check against the legacy grammar dialect")
	showEBNF = flag.Bool("ebnf", false, "print the grammar in EBNF form and exit")
	quiet    = flag.Bool("quiet", false, "only report errors, do not echo parsed models")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: modelspec-cli [flags] [file.spec ...]")
		fmt.Fprintln(os.Stderr, "Checks model specification files (one spec per line); with no files, starts a REPL.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showEBNF {
		fmt.Println(grammar.EBNF())
		return
	}

	if flag.NArg() == 0 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	startTime := time.Now()
	checked, failed := 0, 0

	for _, path := range flag.Args() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			os.Exit(1)
		}

		c, f := checkFile(path, string(source))
		checked += c
		failed += f
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.Red("%d of %d specs failed (%s)", failed, checked, duration)
		os.Exit(1)
	}
	color.Green("Successfully checked %d specs in %s", checked, duration)
}

// checkFile validates every spec line of one file and returns the
// number of specs seen and the number that failed.
func checkFile(path, source string) (checked, failed int) {
	for i, line := range strings.Split(source, "\n") {
		spec := strings.TrimSpace(line)
		if spec == "" || strings.HasPrefix(spec, "#") {
			continue
		}
		checked++

		reporter := errors.NewErrorReporter(fmt.Sprintf("%s:%d", path, i+1), line)

		model, err := grammar.Parse(path, line)
		if err != nil {
			failed++
			if serr, ok := err.(*grammar.SyntaxError); ok {
				fmt.Print(reporter.FormatError(errors.NewSyntaxError(serr)))
			} else {
				fmt.Fprintf(os.Stderr, "%s:%d: %v\n", path, i+1, err)
			}
			continue
		}

		analyzer := semantic.NewAnalyzer()
		if *legacy {
			analyzer = semantic.NewLegacyAnalyzer()
		}
		if errs := analyzer.Analyze(model); len(errs) > 0 {
			failed++
			fmt.Print(reporter.FormatErrors(errs))
			continue
		}

		if !*quiet {
			fmt.Println(model)
			fmt.Printf("  columns: %s\n", strings.Join(semantic.Columns(model), ", "))
		}
	}
	return checked, failed
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
