package parser

import (
	"bytes"
	"fmt"
	"io"
)

// PrintError writes a report for err to w: the source line containing the
// error, a caret under the offending column, and the message.
func PrintError(w io.Writer, src []byte, err *Error) {
	offset := err.Offset
	if offset > len(src) {
		offset = len(src)
	}

	line := 1 + bytes.Count(src[:offset], []byte{'\n'})
	lineStart := bytes.LastIndexByte(src[:offset], '\n') + 1
	lineEnd := bytes.IndexByte(src[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += offset
	}
	column := offset - lineStart + 1

	fmt.Fprintf(w, "Parse error at line %d, column %d:\n", line, column)
	fmt.Fprintf(w, "%s\n", src[lineStart:lineEnd])
	for i := 0; i < column-1; i++ {
		io.WriteString(w, " ")
	}
	io.WriteString(w, "^\n")
	fmt.Fprintf(w, "%s\n", err.Message)
}
