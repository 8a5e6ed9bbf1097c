package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bkendall/husk/lisp"
	"github.com/bkendall/husk/parser"
	"github.com/stretchr/testify/assert"
)

func testRuntime() (*lisp.Runtime, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	rt := lisp.NewRuntime(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(&stdout),
		lisp.WithStderr(&stderr),
	)
	return rt, &stdout, &stderr
}

func TestEvalLine(t *testing.T) {
	rt, stdout, stderr := testRuntime()

	EvalLine(rt, []byte("(+ 1 2 3)"))
	assert.Equal(t, "6\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestEvalLineMultipleForms(t *testing.T) {
	rt, stdout, _ := testRuntime()

	EvalLine(rt, []byte("(set a 1) (set b 2) (+ a b)"))
	assert.Equal(t, "1\n2\n3\n", stdout.String())
}

func TestEvalLineBlank(t *testing.T) {
	rt, stdout, stderr := testRuntime()

	EvalLine(rt, []byte("   "))
	EvalLine(rt, []byte("; just a comment"))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestEvalLineEvalError(t *testing.T) {
	rt, stdout, stderr := testRuntime()

	EvalLine(rt, []byte("missing (set a 1)"))
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error:\t(void-variable . missing)\n", stderr.String())

	// Evaluation stopped at the error; a was never bound.
	stderr.Reset()
	EvalLine(rt, []byte("a"))
	assert.Equal(t, "Error:\t(void-variable . a)\n", stderr.String())
}

func TestEvalLineParseError(t *testing.T) {
	rt, stdout, stderr := testRuntime()

	EvalLine(rt, []byte("(1 2"))
	assert.Empty(t, stdout.String())
	out := stderr.String()
	assert.Contains(t, out, "Parse error")
	assert.Contains(t, out, "^")
}

func TestEvalLineScopeSurvivesLines(t *testing.T) {
	rt, stdout, _ := testRuntime()

	// Bindings persist across lines and across the collection pass that
	// runs before every form.
	EvalLine(rt, []byte("(set xs '(1 2 3))"))
	EvalLine(rt, []byte("(defun head () (car xs))"))
	EvalLine(rt, []byte("(head)"))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Equal(t, []string{"(1 2 3)", "<lambda>", "1"}, lines)
}

func TestLoadRuntimeNatives(t *testing.T) {
	rt, stdout, _ := testRuntime()
	LoadRuntime(rt)

	EvalLine(rt, []byte(`(print "hello")`))
	assert.Equal(t, "hello\nnil\n", stdout.String())

	stdout.Reset()
	EvalLine(rt, []byte("(gc-inspect)"))
	out := stdout.String()
	assert.Contains(t, out, "+")
	assert.True(t, strings.HasSuffix(out, "nil\n"))

	stdout.Reset()
	EvalLine(rt, []byte("(car (car (scope)))"))
	// The innermost frame's first binding is the most recent global.
	assert.NotEmpty(t, stdout.String())
}
