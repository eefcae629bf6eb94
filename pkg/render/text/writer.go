package text

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes plain text with a stack of line prefixes (blockquote
// markers and list indentation). The first write error is kept; Flush
// reports it.
type Writer struct {
	w   *bufio.Writer
	err error

	prefixes    []string
	pending     string
	hasPending  bool
	atLineStart bool
	lastBlank   bool
	wroteAny    bool
}

func newWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), atLineStart: true}
}

func (w *Writer) raw(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Prefix returns the prefix applied to new lines.
func (w *Writer) Prefix() string {
	if len(w.prefixes) == 0 {
		return ""
	}
	return w.prefixes[len(w.prefixes)-1]
}

// PushPrefix makes p the prefix of every following line until PopPrefix.
// p is absolute: it replaces, not extends, the current prefix.
func (w *Writer) PushPrefix(p string) {
	w.prefixes = append(w.prefixes, p)
}

// PopPrefix restores the previous prefix.
func (w *Writer) PopPrefix() {
	if len(w.prefixes) > 0 {
		w.prefixes = w.prefixes[:len(w.prefixes)-1]
	}
}

// SetLinePrefix overrides the prefix of the next line only, as list markers
// do for an item's first line.
func (w *Writer) SetLinePrefix(p string) {
	w.pending = p
	w.hasPending = true
}

// ExtendLinePrefix appends to a pending line prefix, or starts one from the
// current prefix.
func (w *Writer) ExtendLinePrefix(s string) {
	if !w.hasPending {
		w.SetLinePrefix(w.Prefix() + s)
		return
	}
	w.pending += s
}

// HasLinePrefix reports whether a line prefix is waiting for content.
func (w *Writer) HasLinePrefix() bool { return w.hasPending }

func (w *Writer) takeLinePrefix() string {
	if w.hasPending {
		w.hasPending = false
		return w.pending
	}
	return w.Prefix()
}

// Write writes s, starting every line with the current prefix.
func (w *Writer) Write(s string) {
	for {
		line, rest, hasNewline := strings.Cut(s, "\n")
		if line != "" {
			if w.atLineStart {
				w.raw(w.takeLinePrefix())
				w.atLineStart = false
			}
			w.raw(line)
			w.lastBlank = false
			w.wroteAny = true
		}
		if !hasNewline {
			return
		}
		w.Newline()
		s = rest
	}
}

// Newline ends the current line. An empty line still carries the prefix,
// without trailing spaces.
func (w *Writer) Newline() {
	if w.atLineStart {
		// A bare list marker is content; anything else is an empty line.
		w.lastBlank = !w.hasPending
		w.raw(strings.TrimRight(w.takeLinePrefix(), " "))
	}
	w.raw("\n")
	w.atLineStart = true
	w.wroteAny = true
}

// EnsureNewline ends the current line if anything has been written on it.
func (w *Writer) EnsureNewline() {
	if !w.atLineStart {
		w.Newline()
	}
}

// BlankLine ends the current line and writes one empty line, unless the
// output is empty or already ends with an empty line.
func (w *Writer) BlankLine() {
	w.EnsureNewline()
	if !w.wroteAny || w.lastBlank {
		return
	}
	w.Newline()
	w.lastBlank = true
}

// Capture runs fn with output redirected to a string, without prefixes.
func (w *Writer) Capture(fn func()) string {
	var sb strings.Builder
	saved := *w
	*w = Writer{w: bufio.NewWriter(&sb), atLineStart: true}
	fn()
	_ = w.w.Flush()
	*w = saved
	return sb.String()
}

// Flush writes buffered output and returns the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
