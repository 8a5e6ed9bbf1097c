package repl

import (
	"fmt"
	"os"

	"github.com/bkendall/husk/lisp"
)

// LoadRuntime binds the REPL-only natives into rt's global scope: quit,
// print, scope, and gc-inspect.
func LoadRuntime(rt *lisp.Runtime) {
	rt.Native("quit", nativeQuit, nil)
	rt.Native("print", nativePrint, nil)
	rt.Native("scope", nativeScope, nil)
	rt.Native("gc-inspect", nativeGCInspect, nil)
}

func nativeQuit(_ any, rt *lisp.Runtime, _ *lisp.Scope, _ lisp.Value) lisp.Result {
	os.Exit(0)
	return lisp.Ok(rt.Heap.Nil())
}

func nativePrint(_ any, rt *lisp.Runtime, _ *lisp.Scope, args lisp.Value) lisp.Result {
	var s string
	if res := rt.MatchList("s", args, &s); res.Error {
		return res
	}
	fmt.Fprintln(rt.Stdout, s)
	return lisp.Ok(rt.Heap.Nil())
}

func nativeScope(_ any, rt *lisp.Runtime, scope *lisp.Scope, _ lisp.Value) lisp.Result {
	return lisp.Ok(scope.Expr)
}

func nativeGCInspect(_ any, rt *lisp.Runtime, _ *lisp.Scope, _ lisp.Value) lisp.Result {
	rt.Heap.Inspect(rt.Stdout)
	return lisp.Ok(rt.Heap.Nil())
}
