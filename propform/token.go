package propform

import (
	"bufio"
	"io"
)

// Scanner segments an input stream into whitespace-separated tokens.
// Tokens are returned as owning strings, and Next reports end of input
// via its second return value rather than an error.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner wraps r as a token Scanner.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Next returns the next token, or ok=false once the stream is
// exhausted. A non-nil error indicates a read failure on the
// underlying stream, distinct from ordinary end of input.
func (s *Scanner) Next() (tok string, ok bool, err error) {
	if s.sc.Scan() {
		return s.sc.Text(), true, nil
	}
	return "", false, s.sc.Err()
}
