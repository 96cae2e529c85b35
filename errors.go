// errors.go: diagnostic accumulation and caret-snippet rendering.
//
// Grounded on daios-ai-msg/errors.go's WrapErrorWithSource /
// prettyErrorStringLabeled: a Python-style snippet with a header line, the
// offending source line, and a caret under the 1-based column. spec.md §7
// asks for a "fail-soft, report-loud" posture — diagnostics are collected
// on a Diagnostics accumulator and flushed to a writer, they are never
// thrown, and evaluation always continues past them.
package rill

import (
	"fmt"
	"io"
	"strings"
)

// Diagnostics accumulates Lex/Parse/Runtime errors produced during a single
// tokenize/parse/evaluate pass, in the order they were reported.
type Diagnostics struct {
	errs []error
}

// Report appends err (which must render via renderDiagnostic — i.e. be a
// *LexError, *ParseError, or *RuntimeError) to the accumulator.
func (d *Diagnostics) Report(err error) {
	d.errs = append(d.errs, err)
}

// Len reports how many diagnostics have been collected.
func (d *Diagnostics) Len() int { return len(d.errs) }

// Errors returns the raw diagnostics, in report order.
func (d *Diagnostics) Errors() []error { return d.errs }

// Flush renders every collected diagnostic against src and writes it to w,
// one caret-annotated snippet per diagnostic, then clears the accumulator
// so a long-lived Diagnostics (e.g. one REPL session's Interp) does not
// re-render the same diagnostic on a later Flush.
func (d *Diagnostics) Flush(w io.Writer, src string) {
	for _, e := range d.errs {
		fmt.Fprint(w, renderDiagnostic(e, src))
	}
	d.errs = nil
}

// renderDiagnostic formats a single Lex/Parse/Runtime error as a
// Python-style snippet. Any other error kind is rendered with its bare
// Error() string.
func renderDiagnostic(err error, src string) string {
	switch e := err.(type) {
	case *LexError:
		return prettyErrorSnippet(src, "lex error", e.Line, e.Col, e.Msg)
	case *ParseError:
		return prettyErrorSnippet(src, "parse error", e.Line, e.Col, e.Msg)
	case *RuntimeError:
		return prettyErrorSnippet(src, "runtime error", e.Line, e.Col, e.Msg)
	default:
		return fmt.Sprintf("error: %s\n", err.Error())
	}
}

// prettyErrorSnippet builds a header line plus up to one line of context
// before and after the error line, with a caret under the 1-based column.
func prettyErrorSnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
