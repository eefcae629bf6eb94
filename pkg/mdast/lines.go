package mdast

// LineInfo holds the byte offsets of a single source line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// For the last line without a terminator it equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the terminator (or end of input).
	EndOffset int
}

// Content returns the line's bytes without the terminator.
func (l LineInfo) Content(src []byte) []byte {
	return src[l.StartOffset:l.NewlineStart]
}

// BuildLines splits content into lines terminated by LF, CRLF or a lone CR.
// A trailing terminator does not produce an extra empty line.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		switch content[idx] {
		case '\n':
			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: idx,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		case '\r':
			end := idx + 1
			if end < len(content) && content[end] == '\n' {
				end++
			}
			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: idx,
				EndOffset:    end,
			})
			idx = end - 1
			lineStart = end
		}
	}

	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}
