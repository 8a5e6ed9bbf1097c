package lisp

// IsNil returns true if v is the symbol nil.
func (h *Heap) IsNil(v Value) bool {
	return h.IsSymbol(v) && h.Atom(v).Text == "nil"
}

// IsSymbol returns true if v is a symbol atom.
func (h *Heap) IsSymbol(v Value) bool {
	return v.Kind == KindAtom && h.Atom(v).Type == AtomSymbol
}

// IsInteger returns true if v is an integer atom.
func (h *Heap) IsInteger(v Value) bool {
	return v.Kind == KindAtom && h.Atom(v).Type == AtomInteger
}

// IsReal returns true if v is a real atom.
func (h *Heap) IsReal(v Value) bool {
	return v.Kind == KindAtom && h.Atom(v).Type == AtomReal
}

// IsString returns true if v is a string atom.
func (h *Heap) IsString(v Value) bool {
	return v.Kind == KindAtom && h.Atom(v).Type == AtomString
}

// IsCons returns true if v is a cons cell.
func (h *Heap) IsCons(v Value) bool {
	return v.Kind == KindCons
}

// IsLambda returns true if v is a lambda atom.
func (h *Heap) IsLambda(v Value) bool {
	return v.Kind == KindAtom && h.Atom(v).Type == AtomLambda
}

// IsNative returns true if v is a native atom.
func (h *Heap) IsNative(v Value) bool {
	return v.Kind == KindAtom && h.Atom(v).Type == AtomNative
}

// IsList returns true if v is a proper list: nil or a cons chain terminated
// by nil.
func (h *Heap) IsList(v Value) bool {
	for h.IsCons(v) {
		v = h.Cons(v).Cdr
	}
	return h.IsNil(v)
}

// IsListOfSymbols returns true if v is a proper list whose every element is
// a symbol.
func (h *Heap) IsListOfSymbols(v Value) bool {
	for h.IsCons(v) {
		if !h.IsSymbol(h.Cons(v).Car) {
			return false
		}
		v = h.Cons(v).Cdr
	}
	return h.IsNil(v)
}

// ListLength returns the number of cons cells in the chain v.
func (h *Heap) ListLength(v Value) int64 {
	var n int64
	for h.IsCons(v) {
		n++
		v = h.Cons(v).Cdr
	}
	return n
}

// Assoc scans the association list alist and returns the first pair whose
// car is equal to key, or nil when no pair matches.
func (h *Heap) Assoc(key, alist Value) Value {
	for h.IsCons(alist) {
		pair := h.Cons(alist).Car
		if h.IsCons(pair) && h.Equal(h.Cons(pair).Car, key) {
			return pair
		}
		alist = h.Cons(alist).Cdr
	}
	return h.Nil()
}

// List allocates a proper list of the given elements.
func (h *Heap) List(elems ...Value) Value {
	list := h.Nil()
	for i := len(elems) - 1; i >= 0; i-- {
		list = h.NewCons(elems[i], list)
	}
	return list
}
