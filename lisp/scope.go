package lisp

// Scope is a lexical environment.  The underlying expression is a cons
// chain of frames, each frame an association list of (name . value) pairs.
// The head frame is the innermost; the last frame before the nil
// terminator is the global frame:
//
//	(((y . 20))
//	 ((x . 10)
//	  (name . "Alyssa")))
type Scope struct {
	Expr Value
}

// NewScope returns a scope with a single empty global frame.
func NewScope(h *Heap) *Scope {
	return &Scope{Expr: h.NewCons(h.Nil(), h.Nil())}
}

// Get scans frames head to tail for a binding of name and returns its
// (name . value) pair, or nil when name is unbound.
func (s *Scope) Get(h *Heap, name Value) Value {
	expr := s.Expr
	for h.IsCons(expr) {
		cell := h.Assoc(name, h.Cons(expr).Car)
		if !h.IsNil(cell) {
			return cell
		}
		expr = h.Cons(expr).Cdr
	}
	return expr
}

// Set binds name to value.  An existing binding in any frame is mutated in
// place.  When no frame binds name, the new pair is spliced into the global
// frame's car, preserving the identity of the global frame's cons cell so
// that closures holding a reference to it observe the addition.
func (s *Scope) Set(h *Heap, name, value Value) {
	expr := s.Expr
	for h.IsCons(expr) {
		frame := h.Cons(expr)
		cell := h.Assoc(name, frame.Car)
		if !h.IsNil(cell) {
			h.Cons(cell).Cdr = value
			return
		}
		if h.IsNil(frame.Cdr) {
			frame.Car = h.NewCons(h.NewCons(name, value), frame.Car)
			return
		}
		expr = frame.Cdr
	}
	// An empty scope chain has no global frame to splice into.
	s.Expr = h.NewCons(h.NewCons(h.NewCons(name, value), h.Nil()), s.Expr)
}

// PushFrame layers a new frame binding each var to the corresponding arg.
// The frame is built in reverse order, which is immaterial because lookup
// is by key.
func (s *Scope) PushFrame(h *Heap, vars, args Value) {
	frame := h.Nil()
	for !h.IsNil(vars) && !h.IsNil(args) {
		frame = h.NewCons(h.NewCons(h.Cons(vars).Car, h.Cons(args).Car), frame)
		vars = h.Cons(vars).Cdr
		args = h.Cons(args).Cdr
	}
	s.Expr = h.NewCons(frame, s.Expr)
}

// PopFrame drops the head frame.
func (s *Scope) PopFrame(h *Heap) {
	if !h.IsNil(s.Expr) {
		s.Expr = h.Cons(s.Expr).Cdr
	}
}
