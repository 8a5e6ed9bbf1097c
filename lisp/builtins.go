package lisp

// builtinDef pairs a global name with its native implementation.
type builtinDef struct {
	name string
	fn   NativeFunc
}

// stdBuiltins is the standard library registered into every runtime's
// global scope.  Special forms are bridged as natives; the evaluator keeps
// their arguments unevaluated by name (see IsSpecial).
var stdBuiltins = []builtinDef{
	{"car", builtinCar},
	{">", builtinGreaterThan},
	{"+", builtinAdd},
	{"*", builtinMul},
	{"list", builtinList},
	{"cons", builtinCons},
	{"append", builtinAppend},
	{"assoc", builtinAssoc},
	{"equal", builtinEqual},
	{"quote", builtinQuote},
	{"quasiquote", builtinQuasiquote},
	{"unquote", builtinUnquote},
	{"set", builtinSet},
	{"begin", builtinBegin},
	{"defun", builtinDefun},
	{"when", builtinWhen},
	{"lambda", builtinLambda},
	{"λ", builtinLambda},
	{"load", builtinLoad},
}

// LoadStdLibrary binds the standard library and the self-evaluating
// constants t and nil into the global scope.
func (rt *Runtime) LoadStdLibrary() {
	for _, def := range stdBuiltins {
		rt.Native(def.name, def.fn, nil)
	}
	h := rt.Heap
	rt.Global.Set(h, h.Symbol("t"), h.T())
	rt.Global.Set(h, h.Symbol("nil"), h.Nil())
}

func builtinCar(_ any, rt *Runtime, _ *Scope, args Value) Result {
	h := rt.Heap
	var xs Value
	if res := rt.MatchList("e", args, &xs); res.Error {
		return res
	}
	if h.IsNil(xs) {
		return Ok(xs)
	}
	if !h.IsCons(xs) {
		return rt.WrongArgumentType("consp", xs)
	}
	return Ok(h.Cons(xs).Car)
}

// asReal promotes an integer to a real and passes reals through.
func (rt *Runtime) asReal(v Value) Result {
	h := rt.Heap
	if h.IsReal(v) {
		return Ok(v)
	}
	if h.IsInteger(v) {
		return Ok(h.Real(float32(h.Atom(v).Int)))
	}
	return rt.WrongArgumentType("(or realp integerp)", v)
}

func (rt *Runtime) greaterThan2(a, b Value) Result {
	h := rt.Heap
	if h.IsInteger(a) && h.IsInteger(b) {
		return Ok(h.Bool(h.Atom(a).Int > h.Atom(b).Int))
	}
	ra := rt.asReal(a)
	if ra.Error {
		return ra
	}
	rb := rt.asReal(b)
	if rb.Error {
		return rb
	}
	return Ok(h.Bool(h.Atom(ra.Expr).Real > h.Atom(rb.Expr).Real))
}

func builtinGreaterThan(_ any, rt *Runtime, _ *Scope, args Value) Result {
	h := rt.Heap
	if !h.IsCons(args) {
		return rt.WrongArgumentType("consp", args)
	}

	x1 := h.Cons(args).Car
	args = h.Cons(args).Cdr

	sorted := true
	for !h.IsNil(args) && sorted {
		x2 := h.Cons(args).Car
		args = h.Cons(args).Cdr

		res := rt.greaterThan2(x1, x2)
		if res.Error {
			return res
		}
		sorted = sorted && !h.IsNil(res.Expr)

		x1 = x2
	}
	return Ok(h.Bool(sorted))
}

func (rt *Runtime) add2(a, b Value) Result {
	h := rt.Heap
	if h.IsInteger(a) && h.IsInteger(b) {
		return Ok(h.Integer(h.Atom(a).Int + h.Atom(b).Int))
	}
	ra := rt.asReal(a)
	if ra.Error {
		return ra
	}
	rb := rt.asReal(b)
	if rb.Error {
		return rb
	}
	return Ok(h.Real(h.Atom(ra.Expr).Real + h.Atom(rb.Expr).Real))
}

func builtinAdd(_ any, rt *Runtime, _ *Scope, args Value) Result {
	h := rt.Heap
	acc := h.Integer(0)
	for !h.IsNil(args) {
		if !h.IsCons(args) {
			return rt.WrongArgumentType("consp", args)
		}
		res := rt.add2(acc, h.Cons(args).Car)
		if res.Error {
			return res
		}
		acc = res.Expr
		args = h.Cons(args).Cdr
	}
	return Ok(acc)
}

func (rt *Runtime) mul2(a, b Value) Result {
	h := rt.Heap
	if h.IsInteger(a) && h.IsInteger(b) {
		return Ok(h.Integer(h.Atom(a).Int * h.Atom(b).Int))
	}
	ra := rt.asReal(a)
	if ra.Error {
		return ra
	}
	rb := rt.asReal(b)
	if rb.Error {
		return rb
	}
	return Ok(h.Real(h.Atom(ra.Expr).Real * h.Atom(rb.Expr).Real))
}

func builtinMul(_ any, rt *Runtime, _ *Scope, args Value) Result {
	h := rt.Heap
	acc := h.Integer(1)
	for !h.IsNil(args) {
		if !h.IsCons(args) {
			return rt.WrongArgumentType("consp", args)
		}
		res := rt.mul2(acc, h.Cons(args).Car)
		if res.Error {
			return res
		}
		acc = res.Expr
		args = h.Cons(args).Cdr
	}
	return Ok(acc)
}

func builtinList(_ any, _ *Runtime, _ *Scope, args Value) Result {
	return Ok(args)
}

func builtinCons(_ any, rt *Runtime, _ *Scope, args Value) Result {
	var car, cdr Value
	if res := rt.MatchList("ee", args, &car, &cdr); res.Error {
		return res
	}
	return Ok(rt.Heap.NewCons(car, cdr))
}

func builtinAppend(_ any, rt *Runtime, _ *Scope, args Value) Result {
	return rt.appendLists(args)
}

// appendLists concatenates the argument lists.  Every argument but the
// last must be a proper list; the elements of each are copied and the last
// argument becomes the shared tail.
func (rt *Runtime) appendLists(args Value) Result {
	h := rt.Heap
	if h.IsNil(args) {
		return Ok(h.Nil())
	}
	var x, rest Value
	if res := rt.MatchList("e*", args, &x, &rest); res.Error {
		return res
	}
	if h.IsNil(rest) {
		return Ok(x)
	}
	tail := rt.appendLists(rest)
	if tail.Error {
		return tail
	}
	if !h.IsList(x) {
		return rt.WrongArgumentType("listp", x)
	}
	return Ok(rt.appendCopy(x, tail.Expr))
}

func (rt *Runtime) appendCopy(list, tail Value) Value {
	h := rt.Heap
	if h.IsNil(list) {
		return tail
	}
	return h.NewCons(h.Cons(list).Car, rt.appendCopy(h.Cons(list).Cdr, tail))
}

func builtinAssoc(_ any, rt *Runtime, _ *Scope, args Value) Result {
	var key, alist Value
	if res := rt.MatchList("ee", args, &key, &alist); res.Error {
		return res
	}
	return Ok(rt.Heap.Assoc(key, alist))
}

func builtinEqual(_ any, rt *Runtime, _ *Scope, args Value) Result {
	var a, b Value
	if res := rt.MatchList("ee", args, &a, &b); res.Error {
		return res
	}
	return Ok(rt.Heap.Bool(rt.Heap.Equal(a, b)))
}

func builtinQuote(_ any, rt *Runtime, _ *Scope, args Value) Result {
	var expr Value
	if res := rt.MatchList("e", args, &expr); res.Error {
		return res
	}
	return Ok(expr)
}

func builtinQuasiquote(_ any, rt *Runtime, scope *Scope, args Value) Result {
	var expr Value
	if res := rt.MatchList("e", args, &expr); res.Error {
		return res
	}
	return rt.quasiquote(scope, expr)
}

// quasiquote copies expr structurally, evaluating any (unquote e)
// subexpression in place.
func (rt *Runtime) quasiquote(scope *Scope, expr Value) Result {
	h := rt.Heap

	var unquote string
	var unquoted Value
	if res := rt.MatchList("qe", expr, &unquote, &unquoted); !res.Error && unquote == "unquote" {
		return rt.Eval(scope, unquoted)
	}

	if h.IsCons(expr) {
		left := rt.quasiquote(scope, h.Cons(expr).Car)
		if left.Error {
			return left
		}
		right := rt.quasiquote(scope, h.Cons(expr).Cdr)
		if right.Error {
			return right
		}
		return Ok(h.NewCons(left.Expr, right.Expr))
	}
	return Ok(expr)
}

func builtinUnquote(_ any, rt *Runtime, _ *Scope, _ Value) Result {
	return Fail(rt.Heap.String("Using unquote outside of quasiquote."))
}

func builtinSet(_ any, rt *Runtime, scope *Scope, args Value) Result {
	h := rt.Heap
	var name string
	var value Value
	if res := rt.MatchList("qe", args, &name, &value); res.Error {
		return res
	}
	res := rt.Eval(scope, value)
	if res.Error {
		return res
	}
	scope.Set(h, h.Symbol(name), res.Expr)
	return res
}

func builtinBegin(_ any, rt *Runtime, scope *Scope, args Value) Result {
	var block Value
	if res := rt.MatchList("*", args, &block); res.Error {
		return res
	}
	return rt.EvalBlock(scope, block)
}

func builtinDefun(_ any, rt *Runtime, scope *Scope, args Value) Result {
	h := rt.Heap
	var name, params, body Value
	if res := rt.MatchList("ee*", args, &name, &params, &body); res.Error {
		return res
	}
	if !h.IsListOfSymbols(params) {
		return rt.WrongArgumentType("list-of-symbolsp", params)
	}
	lambda := h.NewLambda(params, body, scope.Expr)
	return rt.Eval(scope, h.List(h.Symbol("set"), name, lambda))
}

func builtinWhen(_ any, rt *Runtime, scope *Scope, args Value) Result {
	h := rt.Heap
	var condition, body Value
	if res := rt.MatchList("e*", args, &condition, &body); res.Error {
		return res
	}
	res := rt.Eval(scope, condition)
	if res.Error {
		return res
	}
	if !h.IsNil(res.Expr) {
		return rt.EvalBlock(scope, body)
	}
	return Ok(h.Nil())
}

func builtinLambda(_ any, rt *Runtime, scope *Scope, args Value) Result {
	h := rt.Heap
	var params, body Value
	if res := rt.MatchList("e*", args, &params, &body); res.Error {
		return res
	}
	if !h.IsListOfSymbols(params) {
		return rt.WrongArgumentType("list-of-symbolsp", params)
	}
	return Ok(h.NewLambda(params, body, scope.Expr))
}

func builtinLoad(_ any, rt *Runtime, scope *Scope, args Value) Result {
	var filename string
	if res := rt.MatchList("s", args, &filename); res.Error {
		return res
	}
	if rt.Reader == nil {
		return rt.ReadError("no reader configured", -1)
	}
	source, err := rt.ReadSourceFile(filename)
	if err != nil {
		return rt.ReadError(err.Error(), -1)
	}
	exprs, err := rt.Reader.ReadAll(rt.Heap, source)
	if err != nil {
		pos := int64(-1)
		if perr, ok := err.(interface{ Pos() int }); ok {
			pos = int64(perr.Pos())
		}
		return rt.ReadError(err.Error(), pos)
	}
	return rt.EvalBlock(scope, exprs)
}
