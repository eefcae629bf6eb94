package html

import (
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes &, <, > and ".
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

const upperHex = "0123456789ABCDEF"

// EncodeURL percent-encodes the bytes of dest that are not allowed
// unescaped in a URL. Existing %XX escapes are kept as they are.
func EncodeURL(dest string) string {
	var sb strings.Builder
	sb.Grow(len(dest))
	for i := 0; i < len(dest); i++ {
		c := dest[i]
		switch {
		case c == '%' && i+2 < len(dest) && isHex(dest[i+1]) && isHex(dest[i+2]):
			sb.WriteString(dest[i : i+3])
			i += 2
		case isURLSafe(c):
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0x0f])
		}
	}
	return sb.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isURLSafe(c byte) bool {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return true
	}
	return strings.IndexByte(";/?:@&=+$,-_.!~*'()#", c) >= 0
}

var dangerousSchemes = []string{"javascript:", "vbscript:", "file:", "data:"}

var safeDataImages = []string{"data:image/png", "data:image/gif", "data:image/jpeg", "data:image/webp"}

// isDangerousURL reports whether dest uses a scheme that can run script.
// Inline images in common raster formats are allowed.
func isDangerousURL(dest string) bool {
	lower := strings.ToLower(strings.TrimSpace(dest))
	for _, prefix := range safeDataImages {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
