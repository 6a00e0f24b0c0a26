package stl

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// tokenizer splits an ASCII STL stream into whitespace separated tokens and
// remembers the line each token came from.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
	tok    string
	err    error
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenizer{sc: sc}
}

// get advances to the next token. It returns false at end of input or on a
// read error, which is kept in t.err.
func (t *tokenizer) get() bool {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			t.err = t.sc.Err()
			t.tok = ""
			return false
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	t.tok, t.fields = t.fields[0], t.fields[1:]
	return true
}

// restOfLine consumes and returns the remaining tokens of the current line.
func (t *tokenizer) restOfLine() string {
	rest := strings.Join(t.fields, " ")
	t.fields = nil
	return rest
}

func (t *tokenizer) equals(s string) bool {
	return t.tok == s
}

func (t *tokenizer) expecting(s string) bool {
	return t.get() && t.tok == s
}

func (t *tokenizer) getFloat() (float32, bool) {
	if !t.get() {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.tok, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}
