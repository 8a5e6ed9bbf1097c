// Package repl implements the interactive line loop and the natives that
// are only meaningful inside it.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bkendall/husk/lisp"
	"github.com/bkendall/husk/parser"
	"github.com/bkendall/husk/parser/token"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// DefaultPrompt is printed before each interactive line.
const DefaultPrompt = "> "

// Run reads lines until EOF and evaluates them against rt.  When stdin is
// a terminal the loop uses readline with the given prompt and history
// file; otherwise lines are consumed from stdin without a prompt.
func Run(rt *lisp.Runtime, prompt, historyFile string) error {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			EvalLine(rt, scanner.Bytes())
		}
		return scanner.Err()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		EvalLine(rt, []byte(line))
	}
}

// EvalLine evaluates every form on line in order.  A collection pass runs
// before each form, rooted at the top-level scope.  The collector only runs
// between top-level forms, never during one, so every handle held by an
// in-flight evaluation stays valid.
func EvalLine(rt *lisp.Runtime, line []byte) {
	pos := 0
	for {
		tok := token.Next(line, pos)
		if tok.Empty() {
			return
		}

		rt.Heap.Collect(rt.Global.Expr)

		expr, end, err := parser.ReadExpr(rt.Heap, line, pos)
		if err != nil {
			if perr, ok := err.(*parser.Error); ok {
				parser.PrintError(rt.Stderr, line, perr)
			} else {
				fmt.Fprintln(rt.Stderr, err)
			}
			return
		}

		result := rt.Eval(rt.Global, expr)
		if result.Error {
			fmt.Fprintf(rt.Stderr, "Error:\t%s\n", rt.Heap.Sprint(result.Expr))
			return
		}
		fmt.Fprintln(rt.Stdout, rt.Heap.Sprint(result.Expr))

		pos = end
	}
}
