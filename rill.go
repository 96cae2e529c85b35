// rill.go: the package's public entry points.
//
// Three calls mirror the three pipeline stages spec.md §2 describes
// (source -> tokens -> tree -> values): Tokenize, Parse, and Run. Evaluate
// wires all three together the way a one-shot script runner needs them,
// returning an ExitStatus per spec.md §6 "Exit status": zero on successful
// evaluation, nonzero only when the source itself could not be read or
// tokenized/parsed into a runnable program — diagnosed runtime errors
// never change the exit status, they print and execution continues.
package rill

import "io"

// ExitStatus is the process-facing result of one Evaluate call.
type ExitStatus int

const (
	ExitOK ExitStatus = 0
	ExitError ExitStatus = 1
)

// Tokenize runs the lexer alone, returning every token (always EOF-
// terminated) plus any lexical diagnostics.
func Tokenize(src string) ([]Token, []*LexError) {
	return NewLexer(src).Scan()
}

// Parse runs the lexer then the parser, returning the resulting Program
// plus any lexical and parse diagnostics (lexical errors surface first,
// in source order, followed by parse errors).
func Parse(src string) (*Program, []error) {
	toks, lexErrs := Tokenize(src)
	prog, parseErrs := NewParser(toks).Parse()
	var all []error
	for _, e := range lexErrs {
		all = append(all, e)
	}
	for _, e := range parseErrs {
		all = append(all, e)
	}
	return prog, all
}

// Evaluate tokenizes, parses, and runs src against a fresh Interp,
// flushing every collected diagnostic (lexical, parse, and runtime) to
// diagSink as a caret-annotated snippet, in the order each stage
// produced them. It returns ExitOK whenever a Program was successfully
// parsed and run, regardless of how many diagnostics were reported along
// the way.
func Evaluate(src string, diagSink io.Writer) ExitStatus {
	toks, lexErrs := Tokenize(src)
	prog, parseErrs := NewParser(toks).Parse()

	for _, e := range lexErrs {
		diagSink.Write([]byte(renderDiagnostic(e, src)))
	}
	for _, e := range parseErrs {
		diagSink.Write([]byte(renderDiagnostic(e, src)))
	}
	if prog == nil {
		return ExitError
	}

	interp := NewInterp()
	interp.Run(prog)
	interp.Diagnostics().Flush(diagSink, src)
	return ExitOK
}
