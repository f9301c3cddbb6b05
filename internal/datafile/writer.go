package datafile

import (
	"os"
	"strings"
)

// Writer serializes nodes in the same indentation-nested token format the
// reader accepts. Output is buffered in memory and committed by Save, so a
// failed write never leaves a truncated file behind.
type Writer struct {
	path   string
	buf    strings.Builder
	indent int
}

// NewWriter creates a writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write emits one line holding the given tokens at the current depth.
func (w *Writer) Write(tokens ...string) {
	for i := 0; i < w.indent; i++ {
		w.buf.WriteByte('\t')
	}
	for i, tok := range tokens {
		if i > 0 {
			w.buf.WriteByte(' ')
		}
		w.buf.WriteString(quote(tok))
	}
	w.buf.WriteByte('\n')
}

// WriteBool emits a line of the given tokens followed by the boolean encoded
// as 0 or 1, the form Node.Bool parses back.
func (w *Writer) WriteBool(value bool, tokens ...string) {
	bit := "0"
	if value {
		bit = "1"
	}
	w.Write(append(tokens, bit)...)
}

// BeginChild increases the nesting depth; subsequent lines become children of
// the line written before the call.
func (w *Writer) BeginChild() {
	w.indent++
}

// EndChild decreases the nesting depth.
func (w *Writer) EndChild() {
	if w.indent > 0 {
		w.indent--
	}
}

// String returns the serialized output accumulated so far.
func (w *Writer) String() string {
	return w.buf.String()
}

// Save writes the accumulated output to the target path.
func (w *Writer) Save() error {
	return os.WriteFile(w.path, []byte(w.buf.String()), 0o644)
}

// quote wraps tokens that need quoting to survive a round trip: empty tokens
// and tokens containing whitespace or a comment marker. Double quotes are
// preferred; backticks are used when the token itself contains a quote.
func quote(tok string) string {
	if tok != "" && !strings.ContainsAny(tok, " \t\"`#") {
		return tok
	}
	if strings.Contains(tok, `"`) {
		return "`" + tok + "`"
	}
	return `"` + tok + `"`
}
