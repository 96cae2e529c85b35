package rill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateReturnsOKAndReportsRuntimeDiagnostics(t *testing.T) {
	var out strings.Builder
	status := Evaluate("1 / 0", &out)
	assert.Equal(t, ExitOK, status)
	assert.Contains(t, out.String(), "runtime error")
}

func TestEvaluateReportsLexDiagnosticAndReturnsOK(t *testing.T) {
	var out strings.Builder
	status := Evaluate("\"unterminated", &out)
	assert.Equal(t, ExitOK, status)
	assert.Contains(t, out.String(), "lex error")
}

func TestParseReturnsProgramAndCollectsErrors(t *testing.T) {
	prog, errs := Parse("1 +")
	require.NotNil(t, prog)
	assert.NotEmpty(t, errs)
}

func TestTokenizeProducesEOFTerminatedStream(t *testing.T) {
	toks, errs := Tokenize("1 + 2")
	require.Empty(t, errs)
	assert.Equal(t, EOF, toks[len(toks)-1].Type)
}
