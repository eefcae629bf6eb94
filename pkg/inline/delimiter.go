package inline

import (
	"strings"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// DelimiterRun is a run of identical delimiter characters as seen by a
// DelimiterProcessor while matching an opener against a closer.
type DelimiterRun interface {
	// Char is the delimiter character.
	Char() byte
	// Length is the number of delimiters not yet consumed by a match.
	Length() int
	// OriginalLength is the length of the run as it appeared in the source.
	OriginalLength() int
	CanOpen() bool
	CanClose() bool
}

// DelimiterProcessor turns matched delimiter runs into container nodes.
// Emphasis and strong emphasis are handled by the built-in processor for
// '*' and '_'; extensions add their own (strikethrough for '~').
type DelimiterProcessor interface {
	// Char is the delimiter character the processor handles. It must be ASCII.
	Char() byte
	// MinLength is the shortest run that forms a delimiter at all.
	// Shorter runs are literal text.
	MinLength() int
	// Delimiters returns how many characters to consume from both runs, or
	// 0 when the pair must not match.
	Delimiters(opener, closer DelimiterRun) int
	// Wrap returns the empty container for a match consuming used
	// characters from each side. Nodes between opener and closer become
	// its children.
	Wrap(used int) *mdast.Node
}

// delimiter is an entry in the delimiter stack.
type delimiter struct {
	node *mdast.Node // Text node holding the remaining run

	char       byte
	length     int
	origLength int
	canOpen    bool
	canClose   bool

	prev *delimiter
	next *delimiter
}

func (d *delimiter) Char() byte          { return d.char }
func (d *delimiter) Length() int         { return d.length }
func (d *delimiter) OriginalLength() int { return d.origLength }
func (d *delimiter) CanOpen() bool       { return d.canOpen }
func (d *delimiter) CanClose() bool      { return d.canClose }

type emphasisProcessor struct {
	char byte
}

// EmphasisProcessor returns the processor for '*' or '_' emphasis.
func EmphasisProcessor(char byte) DelimiterProcessor {
	return emphasisProcessor{char: char}
}

func (p emphasisProcessor) Char() byte     { return p.char }
func (p emphasisProcessor) MinLength() int { return 1 }

func (p emphasisProcessor) Delimiters(opener, closer DelimiterRun) int {
	// Rule of 3: when either run can both open and close, the combined
	// original lengths must not be a multiple of 3 unless both are.
	if (opener.CanClose() || closer.CanOpen()) &&
		closer.OriginalLength()%3 != 0 &&
		(opener.OriginalLength()+closer.OriginalLength())%3 == 0 {
		return 0
	}
	if opener.Length() >= 2 && closer.Length() >= 2 {
		return 2
	}
	return 1
}

func (p emphasisProcessor) Wrap(used int) *mdast.Node {
	kind := mdast.NodeEmphasis
	if used == 2 {
		kind = mdast.NodeStrong
	}
	node := mdast.NewNode(kind)
	node.Inline.EmphasisLevel = used
	node.Inline.Delimiter = strings.Repeat(string(p.char), used)
	return node
}

// openersBottomKey indexes the lower bound for opener searches. Closers
// that can also open, and closers of different length mod 3, may match
// openers that a previous failed search already ruled out for others.
type openersBottomKey struct {
	char    byte
	canOpen bool
	mod3    int
}

// processDelimiters resolves every closer above stackBottom against the
// nearest compatible opener, then drops the processed stack entries.
func (ip *inlineParser) processDelimiters(stackBottom *delimiter) {
	openersBottom := make(map[openersBottomKey]*delimiter)

	closer := ip.lastDelimiter
	for closer != nil && closer.prev != stackBottom {
		closer = closer.prev
	}

	for closer != nil {
		proc := ip.proc.delimiters[closer.char]
		if !closer.canClose || proc == nil {
			closer = closer.next
			continue
		}

		key := openersBottomKey{char: closer.char, canOpen: closer.canOpen, mod3: closer.origLength % 3}
		bottom, hasBottom := openersBottom[key]

		used := 0
		var opener *delimiter
		for candidate := closer.prev; candidate != nil && candidate != stackBottom; candidate = candidate.prev {
			if hasBottom && candidate == bottom {
				break
			}
			if candidate.canOpen && candidate.char == closer.char {
				if used = proc.Delimiters(candidate, closer); used > 0 {
					opener = candidate
					break
				}
			}
		}

		if opener == nil {
			openersBottom[key] = closer.prev
			next := closer.next
			if !closer.canOpen {
				ip.removeDelimiter(closer)
			}
			closer = next
			continue
		}

		opener.length -= used
		closer.length -= used
		opener.node.Inline.Text = opener.node.Inline.Text[:len(opener.node.Inline.Text)-used]
		closer.node.Inline.Text = closer.node.Inline.Text[:len(closer.node.Inline.Text)-used]

		// Delimiters strictly between the pair can no longer match.
		for d := closer.prev; d != nil && d != opener; {
			prev := d.prev
			ip.removeDelimiter(d)
			d = prev
		}

		wrapper := proc.Wrap(used)
		if first := opener.node.Next; first != closer.node {
			mdast.Wrap(wrapper, first, closer.node)
		} else {
			mdast.InsertAfter(opener.node, wrapper)
		}

		if opener.length == 0 {
			mdast.Unlink(opener.node)
			ip.removeDelimiter(opener)
		}
		if closer.length == 0 {
			next := closer.next
			mdast.Unlink(closer.node)
			ip.removeDelimiter(closer)
			closer = next
		}
	}

	for ip.lastDelimiter != nil && ip.lastDelimiter != stackBottom {
		ip.removeDelimiter(ip.lastDelimiter)
	}
}

func (ip *inlineParser) pushDelimiter(d *delimiter) {
	d.prev = ip.lastDelimiter
	if d.prev != nil {
		d.prev.next = d
	}
	ip.lastDelimiter = d
}

// removeDelimiter drops d from the stack, leaving its node in the tree.
func (ip *inlineParser) removeDelimiter(d *delimiter) {
	if d.prev != nil {
		d.prev.next = d.next
	}
	if d.next != nil {
		d.next.prev = d.prev
	} else {
		ip.lastDelimiter = d.prev
	}
	d.prev, d.next = nil, nil
}
