// Package langdetect guesses the language of fenced code blocks that have
// no info string, so renderers can still attach a language class.
//
// Detection tries, in order: an interpreter shebang, a table of cheap
// textual signatures, and finally go-enry's classifier restricted to a
// small candidate set. Anything uncertain yields "".
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates bounds the classifier to languages commonly found in
// documentation.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// signature recognizes one language from its most telling features.
type signature struct {
	lang  string
	match func(code []byte, trimmed []byte) bool
}

// signatures are checked in order; earlier entries are more specific.
var signatures = []signature{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", isPython},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.IndexByte(trimmed, '"') >= 0
	}},
	{"dockerfile", func(code, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(code, []byte("\nFROM ")) && bytes.Contains(code, []byte("\nRUN "))) ||
			(bytes.Contains(code, []byte("WORKDIR ")) && bytes.Contains(code, []byte("COPY ")))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := bytes.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
	{"rust", func(code, _ []byte) bool {
		return containsAny(code, "fn main()", "println!", "let mut ")
	}},
	{"javascript", func(code, _ []byte) bool {
		return containsAny(code, "=>", "const ", "let ", "console.log")
	}},
	{"yaml", isYAML},
}

// Detect returns the fence language for code, or "" when no guess is
// confident enough.
func Detect(code []byte) string {
	if len(bytes.TrimSpace(code)) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return fenceName(lang)
	}

	trimmed := bytes.TrimSpace(code)
	for _, sig := range signatures {
		if sig.match(code, trimmed) {
			return sig.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return fenceName(lang)
	}
	return ""
}

// ClassName returns "language-<lang>" for the detected language of code,
// or "" when nothing was detected.
func ClassName(code []byte) string {
	if lang := Detect(code); lang != "" {
		return "language-" + lang
	}
	return ""
}

func isPython(code, _ []byte) bool {
	s := string(code)
	if strings.Contains(s, "def ") && strings.Contains(s, "):") {
		return true
	}
	// "import (" is Go.
	if strings.Contains(s, "import ") && !strings.Contains(s, "import (") &&
		(strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import ")) {
		return true
	}
	return strings.Contains(s, "__name__") || strings.Contains(s, "__main__")
}

// isYAML counts key: value pairs and list items; two or more is YAML.
func isYAML(code, _ []byte) bool {
	count := 0
	for _, line := range bytes.Split(code, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") && line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

func containsAny(b []byte, needles ...string) bool {
	for _, n := range needles {
		if bytes.Contains(b, []byte(n)) {
			return true
		}
	}
	return false
}

// fenceName converts a go-enry language name to a fence tag.
func fenceName(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
