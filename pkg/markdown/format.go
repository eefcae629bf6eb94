package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// ErrUnknownFormat is returned for an output format that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatHTML, FormatText}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatText, "txt", "plain":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension for output in this format.
func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}
	return ".html"
}
