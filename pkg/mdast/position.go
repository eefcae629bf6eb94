package mdast

import "fmt"

// SourcePosition is the source span of a block, in 1-based lines and
// columns. The end is inclusive. Inline nodes carry a zero span.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsValid reports whether the span has been set.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// String formats the span as "line:col-line:col", or "-" when unset.
func (sp SourcePosition) String() string {
	if !sp.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d-%d:%d", sp.StartLine, sp.StartColumn, sp.EndLine, sp.EndColumn)
}
