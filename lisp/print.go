package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format writes the S-expression rendering of v to w.  Void values render
// as nothing at all.
func (h *Heap) Format(w io.Writer, v Value) {
	switch v.Kind {
	case KindAtom:
		h.formatAtom(w, h.Atom(v))
	case KindCons:
		h.formatCons(w, v)
	case KindVoid:
	}
}

// Sprint returns the S-expression rendering of v.
func (h *Heap) Sprint(v Value) string {
	var sb strings.Builder
	h.Format(&sb, v)
	return sb.String()
}

func (h *Heap) formatAtom(w io.Writer, atom *Atom) {
	switch atom.Type {
	case AtomSymbol:
		io.WriteString(w, atom.Text)
	case AtomInteger:
		io.WriteString(w, strconv.FormatInt(atom.Int, 10))
	case AtomReal:
		fmt.Fprintf(w, "%v", atom.Real)
	case AtomString:
		io.WriteString(w, "\"")
		io.WriteString(w, atom.Text)
		io.WriteString(w, "\"")
	case AtomLambda:
		io.WriteString(w, "<lambda>")
	case AtomNative:
		io.WriteString(w, "<native>")
	}
}

func (h *Heap) formatCons(w io.Writer, v Value) {
	io.WriteString(w, "(")
	cons := h.Cons(v)
	h.Format(w, cons.Car)
	for cons.Cdr.Kind == KindCons {
		cons = h.Cons(cons.Cdr)
		io.WriteString(w, " ")
		h.Format(w, cons.Car)
	}
	if !h.IsNil(cons.Cdr) {
		io.WriteString(w, " . ")
		h.Format(w, cons.Cdr)
	}
	io.WriteString(w, ")")
}
