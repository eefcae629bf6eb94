package linkref

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeLabel produces the matching key for a link label: surrounding
// whitespace is trimmed, internal whitespace runs collapse to one space, and
// the result is Unicode case folded, so "Foo  BAR" and "foo bar" match.
func NormalizeLabel(label string) string {
	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		return ""
	}
	return cases.Fold().String(label)
}
