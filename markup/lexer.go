package markup

import (
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Token values of the markup lexer.
const (
	TokText  = iota + 1 // run of text without delimiters
	TokOpen             // "-{"
	TokClose            // "}-"
)

const (
	openDelim  = "-{"
	closeDelim = "}-"
)

// Lexer splits annotated text into delimiters and runs of text in between.
// At every position the leftmost delimiter wins, thus "}-{" is a closing
// delimiter followed by text "{".
//
// Lexer implements the scanner.Tokenizer interface.
type Lexer struct {
	input string
	pos   int
}

var _ scanner.Tokenizer = (*Lexer)(nil)

// NewLexer creates a lexer for an input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token, its lexeme, and its byte position and
// length. At the end of input it returns scanner.EOF. The set of expected
// tokens is ignored.
func (lx *Lexer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	start := lx.pos
	if start >= len(lx.input) {
		return scanner.EOF, "", uint64(start), 0
	}
	rest := lx.input[start:]
	switch {
	case strings.HasPrefix(rest, openDelim):
		lx.pos += len(openDelim)
		return TokOpen, openDelim, uint64(start), uint64(len(openDelim))
	case strings.HasPrefix(rest, closeDelim):
		lx.pos += len(closeDelim)
		return TokClose, closeDelim, uint64(start), uint64(len(closeDelim))
	}
	n := nextDelimiter(rest)
	if n < 0 {
		n = len(rest)
	}
	lx.pos += n
	return TokText, rest[:n], uint64(start), uint64(n)
}

// SetErrorHandler is part of the scanner.Tokenizer interface. Lexing never
// fails, so the handler is never called.
func (lx *Lexer) SetErrorHandler(h func(error)) {}

// nextDelimiter returns the byte index of the leftmost delimiter in s, or -1.
func nextDelimiter(s string) int {
	o, c := strings.Index(s, openDelim), strings.Index(s, closeDelim)
	switch {
	case o < 0:
		return c
	case c < 0:
		return o
	case o < c:
		return o
	}
	return c
}
