package lisp

// Result is the outcome of evaluating an expression.  Errors are
// themselves values, usually (symbol . detail) pairs, so error handlers
// can inspect them by structural matching.
type Result struct {
	Expr  Value
	Error bool
}

// Ok returns a successful result carrying v.
func Ok(v Value) Result {
	return Result{Expr: v}
}

// Fail returns an error result carrying the error value v.
func Fail(v Value) Result {
	return Result{Expr: v, Error: true}
}

// WrongArgumentType returns the error (wrong-argument-type kind obj).
func (rt *Runtime) WrongArgumentType(kind string, obj Value) Result {
	h := rt.Heap
	return Fail(h.List(h.Symbol("wrong-argument-type"), h.Symbol(kind), obj))
}

// WrongNumberOfArguments returns the error
// (wrong-integer-of-arguments . count).
func (rt *Runtime) WrongNumberOfArguments(count int64) Result {
	h := rt.Heap
	return Fail(h.NewCons(h.Symbol("wrong-integer-of-arguments"), h.Integer(count)))
}

// ReadError returns the error (read-error message position).
func (rt *Runtime) ReadError(message string, position int64) Result {
	h := rt.Heap
	return Fail(h.List(h.Symbol("read-error"), h.String(message), h.Integer(position)))
}

// specialForms names the forms whose arguments reach the callable
// unevaluated.
var specialForms = map[string]bool{
	"set":        true,
	"quote":      true,
	"begin":      true,
	"defun":      true,
	"lambda":     true,
	"λ":          true,
	"when":       true,
	"quasiquote": true,
	"unquote":    true,
}

// IsSpecial returns true if name is a special-form name.
func IsSpecial(name string) bool {
	return specialForms[name]
}

// Eval evaluates expr in scope.
func (rt *Runtime) Eval(scope *Scope, expr Value) Result {
	h := rt.Heap
	switch expr.Kind {
	case KindAtom:
		return rt.evalAtom(scope, expr)
	case KindCons:
		cons := h.Cons(expr)
		return rt.evalFuncall(scope, cons.Car, cons.Cdr)
	}
	return Fail(h.NewCons(h.Symbol("unexpected-expression"), expr))
}

func (rt *Runtime) evalAtom(scope *Scope, expr Value) Result {
	h := rt.Heap
	if h.Atom(expr).Type != AtomSymbol {
		return Ok(expr)
	}
	cell := scope.Get(h, expr)
	if h.IsNil(cell) {
		return Fail(h.NewCons(h.Symbol("void-variable"), expr))
	}
	return Ok(h.Cons(cell).Cdr)
}

// evalArgs evaluates each element of the argument chain in order, stopping
// at the first error, and rebuilds the chain from the results.
func (rt *Runtime) evalArgs(scope *Scope, args Value) Result {
	h := rt.Heap
	switch args.Kind {
	case KindAtom:
		return rt.evalAtom(scope, args)
	case KindCons:
		car := rt.Eval(scope, h.Cons(args).Car)
		if car.Error {
			return car
		}
		cdr := rt.evalArgs(scope, h.Cons(args).Cdr)
		if cdr.Error {
			return cdr
		}
		return Ok(h.NewCons(car.Expr, cdr.Expr))
	}
	return Fail(h.NewCons(h.Symbol("unexpected-expression"), args))
}

func (rt *Runtime) evalFuncall(scope *Scope, callable, args Value) Result {
	h := rt.Heap
	res := rt.Eval(scope, callable)
	if res.Error {
		return res
	}

	argsRes := Ok(args)
	if !h.IsSymbol(callable) || !IsSpecial(h.Atom(callable).Text) {
		argsRes = rt.evalArgs(scope, args)
	}
	if argsRes.Error {
		return argsRes
	}

	if h.IsNative(res.Expr) {
		return rt.dispatch(h.Atom(res.Expr).Native, scope, argsRes.Expr)
	}
	return rt.CallLambda(res.Expr, argsRes.Expr)
}

// CallLambda applies a lambda value to an argument list.  A fresh frame
// binding the parameters is layered onto the lambda's captured environment
// and the body expressions evaluate in order; the last value is the
// result.
func (rt *Runtime) CallLambda(lambda, args Value) Result {
	h := rt.Heap
	if !h.IsLambda(lambda) {
		return Fail(h.NewCons(h.Symbol("expected-callable"), lambda))
	}
	if !h.IsList(args) {
		return Fail(h.NewCons(h.Symbol("expected-arguments"), args))
	}

	vars := h.Atom(lambda).Lambda.Params
	if h.ListLength(args) != h.ListLength(vars) {
		return rt.WrongNumberOfArguments(h.ListLength(args))
	}

	scope := &Scope{Expr: h.Atom(lambda).Lambda.Env}
	scope.PushFrame(h, vars, args)

	result := Ok(h.Nil())
	body := h.Atom(lambda).Lambda.Body
	for !h.IsNil(body) {
		result = rt.Eval(scope, h.Cons(body).Car)
		if result.Error {
			return result
		}
		body = h.Cons(body).Cdr
	}
	return result
}

// EvalBlock evaluates each expression of a proper list in order and
// returns the value of the last, or nil for an empty block.
func (rt *Runtime) EvalBlock(scope *Scope, block Value) Result {
	h := rt.Heap
	if !h.IsList(block) {
		return rt.WrongArgumentType("listp", block)
	}
	result := Ok(h.Nil())
	for head := block; h.IsCons(head); head = h.Cons(head).Cdr {
		result = rt.Eval(scope, h.Cons(head).Car)
		if result.Error {
			return result
		}
	}
	return result
}
