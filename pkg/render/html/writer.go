package html

import (
	"bufio"
	"io"
)

// Attr is an HTML attribute. Values are escaped on output.
type Attr struct {
	Key   string
	Value string
}

// Writer emits HTML to a buffered sink. The first write error is kept and
// every later write becomes a no-op; Flush reports it.
type Writer struct {
	w     *bufio.Writer
	err   error
	last  byte
	xhtml bool
}

func newWriter(w io.Writer, xhtml bool) *Writer {
	// Start as if after a newline so the first Line is a no-op.
	return &Writer{w: bufio.NewWriter(w), last: '\n', xhtml: xhtml}
}

// Raw writes s unescaped.
func (w *Writer) Raw(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, w.err = w.w.WriteString(s)
	w.last = s[len(s)-1]
}

// Text writes b with &, <, > and " escaped.
func (w *Writer) Text(b []byte) {
	w.Raw(EscapeHTML(string(b)))
}

// Tag writes an opening or closing tag, e.g. Tag("a", attrs) or Tag("/a").
func (w *Writer) Tag(name string, attrs ...Attr) {
	w.tag(name, attrs, false)
}

// VoidTag writes an element without content such as <br />. In XHTML mode
// the tag self-closes.
func (w *Writer) VoidTag(name string, attrs ...Attr) {
	w.tag(name, attrs, w.xhtml)
}

func (w *Writer) tag(name string, attrs []Attr, selfClose bool) {
	w.Raw("<")
	w.Raw(name)
	for _, attr := range attrs {
		w.Raw(" ")
		w.Raw(attr.Key)
		w.Raw(`="`)
		w.Raw(EscapeHTML(attr.Value))
		w.Raw(`"`)
	}
	if selfClose {
		w.Raw(" /")
	}
	w.Raw(">")
}

// Line ends the current line unless output is already at a line start.
func (w *Writer) Line() {
	if w.last != '\n' {
		w.Raw("\n")
	}
}

// Flush writes buffered output and returns the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
