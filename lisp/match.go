package lisp

import "fmt"

// MatchList destructures a proper list of already-evaluated arguments
// according to format.  Each format character consumes one argument and
// stores it through the corresponding destination pointer (a nil
// destination discards the argument):
//
//	d  integer atom   *int64
//	f  real atom      *float32
//	s  string atom    *string
//	q  symbol atom    *string
//	e  any value      *Value
//	*  remaining list *Value (must be the final specifier)
//
// A kind mismatch produces a wrong-argument-type error; a length mismatch
// produces a wrong-integer-of-arguments error carrying the number of
// arguments received.  A destination of the wrong type is a bug in the
// caller and panics.
func (rt *Runtime) MatchList(format string, xs Value, dst ...any) Result {
	h := rt.Heap
	count := h.ListLength(xs)

	i := 0
	for ; i < len(format) && !h.IsNil(xs); i++ {
		if !h.IsCons(xs) {
			return rt.WrongArgumentType("consp", xs)
		}
		x := h.Cons(xs).Car

		switch format[i] {
		case 'd':
			if !h.IsInteger(x) {
				return rt.WrongArgumentType("integerp", x)
			}
			if p := dst[i]; p != nil {
				*p.(*int64) = h.Atom(x).Int
			}
		case 'f':
			if !h.IsReal(x) {
				return rt.WrongArgumentType("realp", x)
			}
			if p := dst[i]; p != nil {
				*p.(*float32) = h.Atom(x).Real
			}
		case 's':
			if !h.IsString(x) {
				return rt.WrongArgumentType("stringp", x)
			}
			if p := dst[i]; p != nil {
				*p.(*string) = h.Atom(x).Text
			}
		case 'q':
			if !h.IsSymbol(x) {
				return rt.WrongArgumentType("symbolp", x)
			}
			if p := dst[i]; p != nil {
				*p.(*string) = h.Atom(x).Text
			}
		case 'e':
			if p := dst[i]; p != nil {
				*p.(*Value) = x
			}
		case '*':
			if i != len(format)-1 {
				panic(fmt.Sprintf("lisp: * is not the final format specifier: %q", format))
			}
			if p := dst[i]; p != nil {
				*p.(*Value) = xs
			}
			return Ok(h.Nil())
		default:
			panic(fmt.Sprintf("lisp: invalid format specifier %q", format[i]))
		}

		xs = h.Cons(xs).Cdr
	}

	// A trailing * matches the empty tail.
	if i == len(format)-1 && format[i] == '*' && h.IsNil(xs) {
		if p := dst[i]; p != nil {
			*p.(*Value) = h.Nil()
		}
		i++
	}

	if i != len(format) || !h.IsNil(xs) {
		return rt.WrongNumberOfArguments(count)
	}
	return Ok(h.Nil())
}
