// Package parser reads husk source text into values allocated on a heap.
//
// The parser is recursive descent over the byte-span tokens produced by
// the token package.  Every routine returns the parsed value together with
// the position after the consumed tokens, or an Error carrying the
// offending byte position.
package parser

import (
	"fmt"
	"strconv"

	"github.com/bkendall/husk/lisp"
	"github.com/bkendall/husk/parser/token"
)

// Error is a parse error at a byte offset into the source.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at byte %d: %s", e.Offset, e.Message)
}

// Pos returns the byte offset of the error.
func (e *Error) Pos() int {
	return e.Offset
}

func errorf(pos int, format string, v ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, v...), Offset: pos}
}

// ReadExpr parses the first expression at or after pos and returns it with
// the position after its final token.
func ReadExpr(h *lisp.Heap, src []byte, pos int) (lisp.Value, int, error) {
	p := &parser{h: h, src: src}
	v, end, err := p.expr(token.Next(src, pos))
	if err != nil {
		return lisp.Void(), end, err
	}
	return v, end, nil
}

// ReadAll parses every expression in src and returns them as a proper
// list.  An empty source yields nil.
func ReadAll(h *lisp.Heap, src []byte) (lisp.Value, error) {
	p := &parser{h: h, src: src}

	var exprs []lisp.Value
	pos := 0
	for {
		tok := token.Next(src, pos)
		if tok.Empty() {
			break
		}
		v, end, err := p.expr(tok)
		if err != nil {
			return lisp.Void(), err
		}
		exprs = append(exprs, v)
		pos = end
	}
	return h.List(exprs...), nil
}

type parser struct {
	h   *lisp.Heap
	src []byte
}

func (p *parser) expr(tok token.Token) (lisp.Value, int, *Error) {
	if tok.Empty() {
		return lisp.Void(), tok.Begin, errorf(tok.Begin, "unexpected EOF")
	}

	switch p.src[tok.Begin] {
	case '(':
		return p.list(tok)
	case '"':
		return p.str(tok)
	case '\'':
		return p.wrap(tok, "quote")
	case '`':
		return p.wrap(tok, "quasiquote")
	case ',':
		return p.wrap(tok, "unquote")
	case ')':
		return lisp.Void(), tok.Begin, errorf(tok.Begin, "unexpected )")
	case '.':
		return lisp.Void(), tok.Begin, errorf(tok.Begin, "unexpected .")
	}
	return p.atom(tok)
}

// wrap parses the expression after a quote mark and wraps it as
// (name target).
func (p *parser) wrap(tok token.Token, name string) (lisp.Value, int, *Error) {
	target, end, err := p.expr(token.Next(p.src, tok.End))
	if err != nil {
		return lisp.Void(), end, err
	}
	return p.h.List(p.h.Symbol(name), target), end, nil
}

func (p *parser) list(tok token.Token) (lisp.Value, int, *Error) {
	cur := token.Next(p.src, tok.End)
	if cur.Empty() {
		return lisp.Void(), cur.Begin, errorf(cur.Begin, "expected )")
	}
	if p.src[cur.Begin] == ')' {
		return p.h.Nil(), cur.End, nil
	}

	car, end, err := p.expr(cur)
	if err != nil {
		return lisp.Void(), end, err
	}

	// The chain is stitched with void cdrs until the terminator is known.
	head := p.h.NewCons(car, lisp.Void())
	cons := p.h.Cons(head)

	cur = token.Next(p.src, end)
	for !cur.Empty() && p.src[cur.Begin] != '.' && p.src[cur.Begin] != ')' {
		car, end, err = p.expr(cur)
		if err != nil {
			return lisp.Void(), end, err
		}
		next := p.h.NewCons(car, lisp.Void())
		cons.Cdr = next
		cons = p.h.Cons(next)
		cur = token.Next(p.src, end)
	}

	if cur.Empty() {
		return lisp.Void(), cur.Begin, errorf(cur.Begin, "expected )")
	}

	var cdr lisp.Value
	if p.src[cur.Begin] == '.' {
		cdr, end, err = p.cdr(cur)
	} else {
		cdr, end = p.h.Nil(), cur.End
	}
	if err != nil {
		return lisp.Void(), end, err
	}
	cons.Cdr = cdr
	return head, end, nil
}

// cdr parses the dotted tail of a list: a single expression after the dot,
// followed by the closing paren.
func (p *parser) cdr(tok token.Token) (lisp.Value, int, *Error) {
	v, end, err := p.expr(token.Next(p.src, tok.End))
	if err != nil {
		return lisp.Void(), end, err
	}
	cur := token.Next(p.src, end)
	if cur.Empty() || p.src[cur.Begin] != ')' {
		return lisp.Void(), cur.Begin, errorf(cur.Begin, "expected )")
	}
	return v, cur.End, nil
}

// str parses a string literal.  The scan runs over the raw source rather
// than the token span because the tokenizer does not understand escapes; a
// \" sequence must not close the literal.  Supported escapes are \n \r \t
// \\ and \".
func (p *parser) str(tok token.Token) (lisp.Value, int, *Error) {
	var buf []byte
	escaped := false
	for i := tok.Begin + 1; i < len(p.src); i++ {
		c := p.src[i]
		switch {
		case escaped:
			switch c {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case '\\':
				buf = append(buf, '\\')
			case '"':
				buf = append(buf, '"')
			default:
				return lisp.Void(), i, errorf(i, "invalid escaped character")
			}
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return p.h.String(string(buf)), i + 1, nil
		default:
			buf = append(buf, c)
		}
	}
	return lisp.Void(), tok.Begin, errorf(tok.Begin, "unclosed string")
}

// atom classifies a non-delimiter token.  Tokens that begin with a minus
// sign or an ASCII digit are tried as a base-10 integer and then as a
// decimal real; everything else, including tokens that fail both numeric
// parses, is a symbol whose payload is the token bytes.
func (p *parser) atom(tok token.Token) (lisp.Value, int, *Error) {
	text := tok.Text(p.src)
	b := p.src[tok.Begin]
	if b == '-' || ('0' <= b && b <= '9') {
		if x, err := strconv.ParseInt(text, 10, 64); err == nil {
			return p.h.Integer(x), tok.End, nil
		}
		if x, err := strconv.ParseFloat(text, 32); err == nil {
			return p.h.Real(float32(x)), tok.End, nil
		}
	}
	return p.h.Symbol(text), tok.End, nil
}
