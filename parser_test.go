package rill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	toks, lexErrs := NewLexer(src).Scan()
	require.Empty(t, lexErrs)
	prog, parseErrs := NewParser(toks).Parse()
	require.Empty(t, parseErrs)
	return prog
}

func TestParserPowerIsRightAssociative(t *testing.T) {
	prog := mustParse(t, "2 ** 3 ** 2")
	require.Len(t, prog.Stmts, 1)
	stmt := prog.Stmts[0].(*ExprStmt)
	top := stmt.Expr.(*BinaryOp)
	require.Equal(t, "**", top.Op)
	_, leftIsLiteral := top.Left.(*Literal)
	require.True(t, leftIsLiteral)
	right := top.Right.(*BinaryOp)
	assert.Equal(t, "**", right.Op)
}

func TestParserConditionalChain(t *testing.T) {
	prog := mustParse(t, "x > 0 ? \"pos\" ?? x < 0 ? \"neg\" : \"zero\"")
	chain := prog.Stmts[0].(*ExprStmt).Expr.(*CondChain)
	require.Len(t, chain.Arms, 2)
	assert.False(t, chain.Incomplete)
	require.NotNil(t, chain.Fallback)
}

func TestParserConditionalChainWithoutFallbackIsIncomplete(t *testing.T) {
	prog := mustParse(t, "x > 0 ? 1")
	chain := prog.Stmts[0].(*ExprStmt).Expr.(*CondChain)
	assert.True(t, chain.Incomplete)
}

func TestParserSliceShorthandDesugarsToConcatOfAccess(t *testing.T) {
	prog := mustParse(t, "a $[1..2]")
	top := prog.Stmts[0].(*ExprStmt).Expr.(*BinaryOp)
	require.Equal(t, "$", top.Op)
	access := top.Right.(*ArrayAccess)
	_, isRange := access.Index.(*RangeExpr)
	assert.True(t, isRange)
}

func TestParserArrayAssignment(t *testing.T) {
	prog := mustParse(t, "a[0] = 5")
	assign := prog.Stmts[0].(*ArrayAssign)
	assert.Equal(t, "a", assign.Name)
}

func TestParserPlainAssignment(t *testing.T) {
	prog := mustParse(t, "x = 5")
	assign := prog.Stmts[0].(*Assign)
	assert.Equal(t, "x", assign.Name)
}

func TestParserFunctionDefinition(t *testing.T) {
	prog := mustParse(t, "def add(a: int, b: int) -> int ::\n  a + b\nend")
	fn := prog.Stmts[0].(*FunctionDef)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, TypeInt, fn.ReturnType)
}

func TestParserLambdaExpressionBody(t *testing.T) {
	prog := mustParse(t, "fixed <(int)> f = def(a: int) -> int a * 2")
	decl := prog.Stmts[0].(*VarDecl)
	require.True(t, decl.Fixed)
	assert.Equal(t, TypeFunc, decl.Type)
	_, ok := decl.Init.(*Lambda)
	assert.True(t, ok)
}

func TestParserCompositionParsesAsConcat(t *testing.T) {
	prog := mustParse(t, "(doubler $ addFive)(10)")
	call := prog.Stmts[0].(*ExprStmt).Expr.(*CallExpr)
	_, isConcat := call.Callee.(*BinaryOp)
	assert.True(t, isConcat)
}

func TestParserFixedAndDynamicAreBothAccepted(t *testing.T) {
	// Mutual exclusivity is validated during parseDeclaration and
	// reported, not rejected by the grammar itself.
	prog := mustParse(t, "fixed int x = 1")
	decl := prog.Stmts[0].(*VarDecl)
	assert.True(t, decl.Fixed)
	assert.False(t, decl.Dynamic)

	prog2 := mustParse(t, "dynamic int y = 1")
	decl2 := prog2.Stmts[0].(*VarDecl)
	assert.False(t, decl2.Fixed)
	assert.True(t, decl2.Dynamic)
}

func TestParserFixedAndDynamicTogetherIsDiagnosed(t *testing.T) {
	toks, _ := NewLexer("fixed dynamic int x = 1").Scan()
	_, errs := NewParser(toks).Parse()
	require.NotEmpty(t, errs)
}

func TestParserReservedBreakIsDiagnosed(t *testing.T) {
	toks, _ := NewLexer("break").Scan()
	_, errs := NewParser(toks).Parse()
	require.Len(t, errs, 1)
}

func TestParserIfExpressionInline(t *testing.T) {
	prog := mustParse(t, "if x > 0 :: 1")
	ifExpr := prog.Stmts[0].(*ExprStmt).Expr.(*IfExpr)
	assert.False(t, ifExpr.Multiline)
	assert.False(t, ifExpr.HasElse)
}
