package cmd

import (
	"errors"
	"fmt"

	"github.com/bkendall/husk/lisp"
	"github.com/bkendall/husk/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rt := newRuntime(cfg)

		sources, err := runReadSources(rt, args)
		if err != nil {
			return err
		}
		for _, src := range sources {
			if err := runEvalSource(rt, src); err != nil {
				return err
			}
		}
		return nil
	},
}

func runReadSources(rt *lisp.Runtime, args []string) ([][]byte, error) {
	sources := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			sources[i] = []byte(args[i])
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := rt.ReadSourceFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = b
	}
	return sources, nil
}

func runEvalSource(rt *lisp.Runtime, src []byte) error {
	exprs, err := parser.ReadAll(rt.Heap, src)
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			parser.PrintError(rt.Stderr, src, perr)
		}
		return err
	}
	h := rt.Heap
	for head := exprs; h.IsCons(head); head = h.Cons(head).Cdr {
		result := rt.Eval(rt.Global, h.Cons(head).Car)
		if result.Error {
			fmt.Fprintf(rt.Stderr, "Error:\t%s\n", h.Sprint(result.Expr))
			return errors.New("evaluation failed")
		}
		if runPrint {
			fmt.Fprintln(rt.Stdout, h.Sprint(result.Expr))
		}
	}
	// Source fully evaluated; anything not bound by it is garbage now.
	h.Collect(rt.Global.Expr)
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
