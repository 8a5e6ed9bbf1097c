package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalSelfEvaluatingAtoms(t *testing.T) {
	rt := NewRuntime()
	h := rt.Heap

	for _, v := range []Value{
		h.Integer(5),
		h.Real(2.5),
		h.String("s"),
		h.NewLambda(h.Nil(), h.Nil(), rt.Global.Expr),
		h.NewNative(0, nil),
	} {
		res := rt.Eval(rt.Global, v)
		require.False(t, res.Error)
		assert.Equal(t, v, res.Expr)
	}
}

func TestEvalSymbolLookup(t *testing.T) {
	rt := NewRuntime()
	h := rt.Heap

	rt.Global.Set(h, h.Symbol("x"), h.Integer(10))
	res := rt.Eval(rt.Global, h.Symbol("x"))
	require.False(t, res.Error)
	assert.Equal(t, int64(10), h.Atom(res.Expr).Int)

	res = rt.Eval(rt.Global, h.Symbol("missing"))
	require.True(t, res.Error)
	assert.Equal(t, "(void-variable . missing)", h.Sprint(res.Expr))
}

func TestEvalErrorsUnwind(t *testing.T) {
	rt := NewRuntime()
	h := rt.Heap

	// The second argument fails to evaluate, so + never runs.
	form := h.List(h.Symbol("+"), h.Integer(1), h.Symbol("missing"), h.Integer(2))
	res := rt.Eval(rt.Global, form)
	require.True(t, res.Error)
	assert.Equal(t, "(void-variable . missing)", h.Sprint(res.Expr))
}

func TestCallLambda(t *testing.T) {
	rt := NewRuntime()
	h := rt.Heap

	// (lambda (x) x)
	id := h.NewLambda(h.List(h.Symbol("x")), h.List(h.Symbol("x")), rt.Global.Expr)

	res := rt.CallLambda(id, h.List(h.Integer(42)))
	require.False(t, res.Error)
	assert.Equal(t, int64(42), h.Atom(res.Expr).Int)

	res = rt.CallLambda(id, h.List(h.Integer(1), h.Integer(2)))
	require.True(t, res.Error)
	assert.Equal(t, "(wrong-integer-of-arguments . 2)", h.Sprint(res.Expr))

	res = rt.CallLambda(h.Integer(7), h.Nil())
	require.True(t, res.Error)
	assert.Equal(t, "(expected-callable . 7)", h.Sprint(res.Expr))
}

func TestCallLambdaEmptyBody(t *testing.T) {
	rt := NewRuntime()
	h := rt.Heap

	f := h.NewLambda(h.Nil(), h.Nil(), rt.Global.Expr)
	res := rt.CallLambda(f, h.Nil())
	require.False(t, res.Error)
	assert.True(t, h.IsNil(res.Expr))
}

func TestEvalBlock(t *testing.T) {
	rt := NewRuntime()
	h := rt.Heap

	res := rt.EvalBlock(rt.Global, h.List(h.Integer(1), h.Integer(2)))
	require.False(t, res.Error)
	assert.Equal(t, int64(2), h.Atom(res.Expr).Int)

	res = rt.EvalBlock(rt.Global, h.Nil())
	require.False(t, res.Error)
	assert.True(t, h.IsNil(res.Expr))

	res = rt.EvalBlock(rt.Global, h.Integer(1))
	require.True(t, res.Error)
}

func TestIsSpecial(t *testing.T) {
	for _, name := range []string{
		"set", "quote", "begin", "defun", "lambda", "λ", "when",
		"quasiquote", "unquote",
	} {
		assert.True(t, IsSpecial(name), name)
	}
	assert.False(t, IsSpecial("car"))
	assert.False(t, IsSpecial("list"))
}
