package lisp

import (
	"fmt"
	"io"
)

const heapInitialCapacity = 256

// slot is one entry in the heap table.  A slot with neither payload set is
// a void tombstone left behind by the collector.
type slot struct {
	atom *Atom
	cons *Cons
}

func (s *slot) void() bool {
	return s.atom == nil && s.cons == nil
}

// Heap owns every live Atom and Cons.  Objects are addressed by Value
// handles whose slot indices are stable for the object's whole lifetime;
// collection never moves a live object, so handles held by the caller
// remain valid across a Collect.
type Heap struct {
	slots []slot
	marks []bool
	free  []int
}

// NewHeap returns an empty heap.
func NewHeap() *Heap {
	return &Heap{
		slots: make([]slot, 0, heapInitialCapacity),
	}
}

// Len returns the number of slots in the table, live and void.
func (h *Heap) Len() int {
	return len(h.slots)
}

// Live returns the number of slots holding a live object.
func (h *Heap) Live() int {
	return len(h.slots) - len(h.free)
}

func (h *Heap) alloc(s slot) int {
	if n := len(h.free); n > 0 {
		i := h.free[n-1]
		h.free = h.free[:n-1]
		h.slots[i] = s
		return i
	}
	h.slots = append(h.slots, s)
	return len(h.slots) - 1
}

// AllocAtom registers atom with the heap and returns its handle.
// Allocation never deduplicates.
func (h *Heap) AllocAtom(atom *Atom) Value {
	if atom == nil {
		panic("lisp: alloc of nil atom")
	}
	return Value{Kind: KindAtom, slot: h.alloc(slot{atom: atom})}
}

// AllocCons registers cons with the heap and returns its handle.
func (h *Heap) AllocCons(cons *Cons) Value {
	if cons == nil {
		panic("lisp: alloc of nil cons")
	}
	return Value{Kind: KindCons, slot: h.alloc(slot{cons: cons})}
}

// Atom resolves an atom handle.  Atom panics when v does not address a live
// atom; that is a bug in the caller, not a user-visible error.
func (h *Heap) Atom(v Value) *Atom {
	if v.Kind != KindAtom {
		panic(fmt.Sprintf("lisp: not an atom handle: %v", v.Kind))
	}
	a := h.slots[v.slot].atom
	if a == nil {
		panic("lisp: atom handle addresses a void slot")
	}
	return a
}

// Cons resolves a cons handle.  Cons panics when v does not address a live
// cons cell.
func (h *Heap) Cons(v Value) *Cons {
	if v.Kind != KindCons {
		panic(fmt.Sprintf("lisp: not a cons handle: %v", v.Kind))
	}
	c := h.slots[v.slot].cons
	if c == nil {
		panic("lisp: cons handle addresses a void slot")
	}
	return c
}

// Collect performs a full mark-and-sweep pass over the heap, destroying
// every object unreachable from root.  Collect must only be called from
// top-level control, between forms; no handle held on the Go call stack of
// an in-flight evaluation is known to the root.
func (h *Heap) Collect(root Value) {
	if len(h.marks) < len(h.slots) {
		h.marks = make([]bool, len(h.slots))
	} else {
		for i := range h.marks {
			h.marks[i] = false
		}
	}

	h.traverse(root)

	for i := range h.slots {
		if h.marks[i] || h.slots[i].void() {
			continue
		}
		h.slots[i] = slot{}
		h.free = append(h.free, i)
	}
}

func (h *Heap) traverse(v Value) {
	switch v.Kind {
	case KindVoid:
		panic("lisp: collect reached a void expression")
	case KindCons:
		if h.slots[v.slot].cons == nil {
			panic("lisp: collect reached an unregistered handle")
		}
		if h.marks[v.slot] {
			return
		}
		h.marks[v.slot] = true
		cons := h.slots[v.slot].cons
		h.traverse(cons.Car)
		h.traverse(cons.Cdr)
	case KindAtom:
		if h.slots[v.slot].atom == nil {
			panic("lisp: collect reached an unregistered handle")
		}
		if h.marks[v.slot] {
			return
		}
		h.marks[v.slot] = true
		atom := h.slots[v.slot].atom
		if atom.Type == AtomLambda {
			h.traverse(atom.Lambda.Params)
			h.traverse(atom.Lambda.Body)
			h.traverse(atom.Lambda.Env)
		}
	}
}

// Inspect writes the heap occupancy map to w, one character per slot: "+"
// for a live object and "." for a void tombstone.
func (h *Heap) Inspect(w io.Writer) {
	for i := range h.slots {
		if h.slots[i].void() {
			io.WriteString(w, ".")
		} else {
			io.WriteString(w, "+")
		}
	}
	io.WriteString(w, "\n")
}

// Symbol allocates a symbol atom.
func (h *Heap) Symbol(name string) Value {
	return h.AllocAtom(&Atom{Type: AtomSymbol, Text: name})
}

// Integer allocates an integer atom.
func (h *Heap) Integer(x int64) Value {
	return h.AllocAtom(&Atom{Type: AtomInteger, Int: x})
}

// Real allocates a real atom.
func (h *Heap) Real(x float32) Value {
	return h.AllocAtom(&Atom{Type: AtomReal, Real: x})
}

// String allocates a string atom.
func (h *Heap) String(s string) Value {
	return h.AllocAtom(&Atom{Type: AtomString, Text: s})
}

// NewLambda allocates a lambda atom closing over env.
func (h *Heap) NewLambda(params, body, env Value) Value {
	return h.AllocAtom(&Atom{Type: AtomLambda, Lambda: Lambda{Params: params, Body: body, Env: env}})
}

// NewNative allocates a native atom for the registered function id.
func (h *Heap) NewNative(fun FuncID, param any) Value {
	return h.AllocAtom(&Atom{Type: AtomNative, Native: Native{Fun: fun, Param: param}})
}

// NewCons allocates a cons cell.
func (h *Heap) NewCons(car, cdr Value) Value {
	return h.AllocCons(&Cons{Car: car, Cdr: cdr})
}

// Nil allocates the canonical empty list, the symbol nil.  Symbols compare
// by payload, so every allocation is interchangeable with every other.
func (h *Heap) Nil() Value {
	return h.Symbol("nil")
}

// T allocates the canonical truth value, the symbol t.
func (h *Heap) T() Value {
	return h.Symbol("t")
}

// Bool returns t when ok is true and nil otherwise.
func (h *Heap) Bool(ok bool) Value {
	if ok {
		return h.T()
	}
	return h.Nil()
}
