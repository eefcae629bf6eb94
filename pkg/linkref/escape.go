package linkref

import (
	"html"
	"strings"
	"unicode/utf8"
)

// IsEscapable reports whether b may be backslash-escaped (ASCII punctuation).
func IsEscapable(b byte) bool {
	switch {
	case b >= '!' && b <= '/', b >= ':' && b <= '@', b >= '[' && b <= '`', b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}

// DecodeEntity decodes the entity or numeric character reference starting
// at src[pos] == '&'. It returns the decoded text and the index just past
// the terminating ';', or ok=false when src[pos:] is not a valid reference.
func DecodeEntity(src []byte, pos int) (decoded string, end int, ok bool) {
	if pos >= len(src) || src[pos] != '&' {
		return "", pos, false
	}

	i := pos + 1
	if i < len(src) && src[i] == '#' {
		return decodeNumeric(src, pos)
	}

	for i < len(src) && i-pos <= 32 && isAlnum(src[i]) {
		i++
	}
	if i == pos+1 || i >= len(src) || src[i] != ';' {
		return "", pos, false
	}

	ref := string(src[pos : i+1])
	out := html.UnescapeString(ref)
	// html.UnescapeString also accepts prefixes of legacy entities such as
	// "&not" inside "&notit;"; only a full match counts.
	if out == ref || (strings.HasSuffix(out, ";") && ref != "&semi;") {
		return "", pos, false
	}
	return out, i + 1, true
}

func decodeNumeric(src []byte, pos int) (string, int, bool) {
	i := pos + 2
	hex := false
	if i < len(src) && (src[i] == 'x' || src[i] == 'X') {
		hex = true
		i++
	}

	start := i
	maxDigits := 7
	if hex {
		maxDigits = 6
	}

	code := 0
	for i < len(src) && i-start < maxDigits+1 {
		digit, ok := digitValue(src[i], hex)
		if !ok {
			break
		}
		if hex {
			code = code*16 + digit
		} else {
			code = code*10 + digit
		}
		i++
	}

	digits := i - start
	if digits == 0 || digits > maxDigits || i >= len(src) || src[i] != ';' {
		return "", pos, false
	}

	r := rune(code)
	if code == 0 || !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return string(r), i + 1, true
}

func digitValue(b byte, hex bool) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case hex && b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case hex && b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// Unescape resolves backslash escapes and character references in s, as
// required for link destinations, titles and code block info strings.
func Unescape(s string) string {
	if !strings.ContainsAny(s, "\\&") {
		return s
	}

	src := []byte(s)
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == '\\' && i+1 < len(src) && IsEscapable(src[i+1]):
			sb.WriteByte(src[i+1])
			i += 2
		case c == '&':
			if decoded, end, ok := DecodeEntity(src, i); ok {
				sb.WriteString(decoded)
				i = end
				continue
			}
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String()
}
