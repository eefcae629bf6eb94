package reporter

import "fmt"

// Format is a report format.
type Format string

// Report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatNone Format = "none"
)

// ParseFormat parses a format string. Empty means FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNone:
		return FormatNone, nil
	default:
		return "", fmt.Errorf("unknown report format %q; valid formats: text, json, none", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatNone:
		return true
	default:
		return false
	}
}
