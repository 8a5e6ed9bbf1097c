// Package interptest provides a table-driven harness for end-to-end
// interpreter tests: source strings evaluated in sequence against one
// runtime, comparing the printed form of each result.
package interptest

import (
	"io"
	"testing"

	"github.com/bkendall/husk/lisp"
	"github.com/bkendall/husk/parser"
)

// TestSequence is a sequence of expressions evaluated sequentially in a
// single runtime.  Result is the expected S-expression rendering of the
// value; error results render with an "error: " prefix.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner evaluates test suites.
type Runner struct {
	// Collect runs a collection pass rooted at the global scope before
	// every expression, the way the interactive loop does.
	Collect bool
}

// NewRuntime returns a runtime with the parser as its source reader and
// output discarded.  The REPL-only natives (quit, print, scope, gc-inspect)
// are not bound.
func NewRuntime() *lisp.Runtime {
	return lisp.NewRuntime(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(io.Discard),
		lisp.WithStderr(io.Discard),
	)
}

// RunTestSuite runs each TestSequence of tests in an isolated runtime.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		rt := NewRuntime()
		for j, expr := range test.TestSequence {
			if r.Collect {
				rt.Heap.Collect(rt.Global.Expr)
			}
			v, _, err := parser.ReadExpr(rt.Heap, []byte(expr.Expr), 0)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			res := rt.Eval(rt.Global, v)
			result := rt.Heap.Sprint(res.Expr)
			if res.Error {
				result = "error: " + result
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)",
					i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// RunTestSuite runs tests with a default Runner.
func RunTestSuite(t *testing.T, tests TestSuite) {
	(&Runner{}).RunTestSuite(t, tests)
}
