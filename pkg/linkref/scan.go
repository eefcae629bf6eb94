package linkref

import "bytes"

// MaxLabelLength is the longest label content accepted between brackets.
const MaxLabelLength = 999

// MaxDestinationDepth is the deepest parenthesis nesting accepted in an
// unbracketed destination. Deeper nesting fails the destination.
const MaxDestinationDepth = 32

// ScanLabel scans a link label starting at src[pos] == '['. It returns the
// raw label content and the index just past the closing ']'.
func ScanLabel(src []byte, pos int) (label string, end int, ok bool) {
	if pos >= len(src) || src[pos] != '[' {
		return "", pos, false
	}

	for i := pos + 1; i < len(src) && i-pos-1 <= MaxLabelLength; i++ {
		switch src[i] {
		case '\\':
			if i+1 < len(src) && IsEscapable(src[i+1]) {
				i++
			}
		case '[':
			return "", pos, false
		case ']':
			return string(src[pos+1 : i]), i + 1, true
		}
	}
	return "", pos, false
}

// ScanDestination scans a link destination at src[pos], either <bracketed>
// or a run of non-space characters with balanced parentheses nested at most
// MaxDestinationDepth deep. It returns the
// unescaped destination and the index just past it.
func ScanDestination(src []byte, pos int) (dest string, end int, ok bool) {
	if pos >= len(src) {
		return "", pos, false
	}

	if src[pos] == '<' {
		for i := pos + 1; i < len(src); i++ {
			switch src[i] {
			case '\\':
				if i+1 < len(src) && IsEscapable(src[i+1]) {
					i++
				}
			case '\n', '<':
				return "", pos, false
			case '>':
				return Unescape(string(src[pos+1 : i])), i + 1, true
			}
		}
		return "", pos, false
	}

	depth := 0
	i := pos
scan:
	for ; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src) && IsEscapable(src[i+1]):
			i++
		case c == '(':
			if depth == MaxDestinationDepth {
				return "", pos, false
			}
			depth++
		case c == ')':
			if depth == 0 {
				break scan
			}
			depth--
		case c <= ' ' || c == 0x7f:
			break scan
		}
	}

	if i == pos || depth != 0 {
		return "", pos, false
	}
	return Unescape(string(src[pos:i])), i, true
}

// ScanTitle scans a link title delimited by "", '' or () at src[pos].
// It returns the unescaped title and the index just past the closing delimiter.
func ScanTitle(src []byte, pos int) (title string, end int, ok bool) {
	if pos >= len(src) {
		return "", pos, false
	}

	var closer byte
	switch src[pos] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return "", pos, false
	}

	for i := pos + 1; i < len(src); i++ {
		switch c := src[i]; {
		case c == '\\' && i+1 < len(src) && IsEscapable(src[i+1]):
			i++
		case c == closer:
			return Unescape(string(src[pos+1 : i])), i + 1, true
		case closer == ')' && c == '(':
			return "", pos, false
		case c == '\n' && i+1 < len(src) && isBlankLineStart(src[i+1:]):
			return "", pos, false
		}
	}
	return "", pos, false
}

// ParseDefinitions strips the link reference definitions at the start of a
// paragraph's raw content. Definition.Line is the 0-based line offset of each
// definition within raw; callers add the paragraph's first line.
func ParseDefinitions(raw []byte) (defs []Definition, rest []byte) {
	line := 0
	for len(raw) > 0 && raw[0] == '[' {
		def, n, ok := parseDefinition(raw)
		if !ok {
			break
		}
		def.Line = line
		line += bytes.Count(raw[:n], []byte{'\n'})
		defs = append(defs, def)
		raw = raw[n:]
	}
	return defs, raw
}

func parseDefinition(src []byte) (Definition, int, bool) {
	label, i, ok := ScanLabel(src, 0)
	if !ok || i >= len(src) || src[i] != ':' {
		return Definition{}, 0, false
	}
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return Definition{}, 0, false
	}

	i = skipSpaceAndNewline(src, i+1)
	dest, j, ok := ScanDestination(src, i)
	if !ok {
		return Definition{}, 0, false
	}

	def := Definition{Label: label, Normalized: normalized, Destination: dest}

	// End position when the definition has no title.
	noTitleEnd := -1
	if k := skipSpace(src, j); k == len(src) || src[k] == '\n' {
		noTitleEnd = lineEnd(src, k)
	}

	if titleStart := skipSpaceAndNewline(src, j); titleStart > j && titleStart < len(src) {
		if title, t, ok := ScanTitle(src, titleStart); ok {
			if m := skipSpace(src, t); m == len(src) || src[m] == '\n' {
				def.Title = title
				return def, lineEnd(src, m), true
			}
		}
	}

	if noTitleEnd < 0 {
		return Definition{}, 0, false
	}
	return def, noTitleEnd, true
}

func skipSpace(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}

func skipSpaceAndNewline(src []byte, i int) int {
	i = skipSpace(src, i)
	if i < len(src) && src[i] == '\n' {
		i = skipSpace(src, i+1)
	}
	return i
}

func lineEnd(src []byte, i int) int {
	if i < len(src) && src[i] == '\n' {
		return i + 1
	}
	return i
}

func isBlankLineStart(src []byte) bool {
	i := skipSpace(src, 0)
	return i == len(src) || src[i] == '\n'
}
