package parser

import "github.com/bkendall/husk/lisp"

type reader struct{}

// NewReader returns a lisp.Reader backed by this package, for use as a
// runtime's source reader.
func NewReader() lisp.Reader {
	return reader{}
}

// ReadAll implements lisp.Reader.
func (reader) ReadAll(h *lisp.Heap, src []byte) (lisp.Value, error) {
	return ReadAll(h, src)
}
