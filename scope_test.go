package rill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeLookupWalksParentChain(t *testing.T) {
	root := NewScope(nil)
	root.Define("x", IntVal(1), false, false)
	child := NewScope(root)
	sv, ok := child.LookupVar("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), sv.Value.AsInt())
}

func TestScopeAssignRejectsUndefined(t *testing.T) {
	sc := NewScope(nil)
	err := sc.Assign("missing", IntVal(1))
	assert.Error(t, err)
}

func TestScopeAssignRejectsFixed(t *testing.T) {
	sc := NewScope(nil)
	sc.Define("x", IntVal(1), false, true)
	err := sc.Assign("x", IntVal(2))
	assert.Error(t, err)
}

func TestScopeAssignRejectsNonDynamicArray(t *testing.T) {
	sc := NewScope(nil)
	sc.Define("a", ArrVal(NewArrayValue(nil)), false, false)
	err := sc.Assign("a", ArrVal(NewArrayValue(nil)))
	assert.Error(t, err)
}

func TestScopeAssignAllowsDynamicArrayReassignment(t *testing.T) {
	sc := NewScope(nil)
	sc.Define("a", ArrVal(NewArrayValue(nil)), true, false)
	err := sc.Assign("a", ArrVal(NewArrayValue([]Value{IntVal(1)})))
	assert.NoError(t, err)
}

func TestScopeCaptureSnapshotNearestScopeWins(t *testing.T) {
	root := NewScope(nil)
	root.Define("x", IntVal(1), false, false)
	child := NewScope(root)
	child.Define("x", IntVal(2), false, false)
	snap := child.CaptureSnapshot()
	assert.Equal(t, int64(2), snap["x"].AsInt())
}

func TestScopeLocalFunctionAttachesToEnclosingScope(t *testing.T) {
	root := NewScope(nil)
	fn := &FunctionDef{Name: "f"}
	root.DefineLocalFunction(fn)
	child := NewScope(root)
	got, ok := child.LookupLocalFunction("f")
	require.True(t, ok)
	assert.Same(t, fn, got)
}
