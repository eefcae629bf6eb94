package parser

import "github.com/yaklabco/gomdkit/pkg/mdast"

// maxOrderedDigits bounds ordered list start numbers to nine digits.
const maxOrderedDigits = 9

// listParser is the List container. It has no markers of its own; it stays
// open while items keep arriving and records looseness from blank lines.
type listParser struct {
	BlockBase
	node *mdast.Node

	hadBlankLine    bool
	linesAfterBlank int
}

func (b *listParser) Node() *mdast.Node { return b.node }
func (b *listParser) IsContainer() bool { return true }

func (b *listParser) CanContain(child *mdast.Node) bool {
	if child.Kind != mdast.NodeListItem {
		return false
	}
	// A new item right after a blank line makes the list loose.
	if b.hadBlankLine && b.linesAfterBlank == 1 {
		b.node.Block.List.Tight = false
		b.hadBlankLine = false
	}
	return true
}

func (b *listParser) TryContinue(s State) (Continue, bool) {
	switch {
	case s.IsBlank():
		b.hadBlankLine = true
		b.linesAfterBlank = 0
	case b.hadBlankLine:
		b.linesAfterBlank++
	}
	return ContinueAtIndex(s.Index()), true
}

type listItemParser struct {
	BlockBase
	node *mdast.Node

	// contentIndent is the number of columns, relative to the enclosing
	// block, that continuation content must be indented by.
	contentIndent int
	hadBlankLine  bool
}

func (b *listItemParser) Node() *mdast.Node { return b.node }
func (b *listItemParser) IsContainer() bool { return true }

func (b *listItemParser) CanContain(*mdast.Node) bool {
	// Two children of an item separated by a blank line make the list loose.
	if b.hadBlankLine {
		if parent := b.node.Parent; parent != nil && parent.Kind == mdast.NodeList {
			parent.Block.List.Tight = false
		}
	}
	return true
}

func (b *listItemParser) TryContinue(s State) (Continue, bool) {
	if s.IsBlank() {
		if b.node.FirstChild == nil {
			// An item can begin with at most one blank line.
			return Continue{}, false
		}
		active := s.ActiveBlock().Node()
		// Blank lines inside fenced code do not loosen the list.
		b.hadBlankLine = active.Kind == mdast.NodeParagraph || active.Kind == mdast.NodeListItem
		return ContinueAtIndex(s.NextNonSpace()), true
	}

	if s.Indent() >= b.contentIndent {
		return ContinueAtColumn(s.Column() + b.contentIndent), true
	}
	// Lazy continuation lines are picked up by the paragraph afterwards.
	return Continue{}, false
}

type listMarker struct {
	ordered    bool
	bullet     byte
	start      int
	delimiter  byte
	indexAfter int
}

func startListItem(s State) (Start, bool) {
	if s.Indent() >= codeIndent {
		return Start{}, false
	}

	line := s.Line()
	markerIndex := s.NextNonSpace()
	markerColumn := s.Column() + s.Indent()

	marker, ok := parseListMarker(line, markerIndex)
	if !ok {
		return Start{}, false
	}

	columnAfterMarker := markerColumn + (marker.indexAfter - markerIndex)
	contentColumn := columnAfterMarker
	hasContent := false
	for i := marker.indexAfter; i < len(line); i++ {
		c := line[i]
		if c == '\t' {
			contentColumn += columnsToNextTabStop(contentColumn)
		} else if c == ' ' {
			contentColumn++
		} else {
			hasContent = true
			break
		}
	}

	if s.ParagraphContent() != nil {
		// Only a non-empty item starting at 1 may interrupt a paragraph.
		if !hasContent || (marker.ordered && marker.start != 1) {
			return Start{}, false
		}
	}

	if !hasContent || contentColumn-columnAfterMarker > codeIndent {
		// Blank item or indented code after the marker: content starts
		// one column after the marker.
		contentColumn = columnAfterMarker + 1
	}

	item := &listItemParser{
		node:          mdast.NewNode(mdast.NodeListItem),
		contentIndent: contentColumn - s.Column(),
	}

	if matched, ok := s.MatchedBlock().(*listParser); ok && listsMatch(matched.node.Block.List, marker) {
		return StartOf(item).AtColumn(contentColumn), true
	}

	list := &listParser{node: mdast.NewNode(mdast.NodeList)}
	list.node.Block.List = newListAttrs(marker)
	return StartOf(list, item).AtColumn(contentColumn), true
}

func parseListMarker(line []byte, index int) (listMarker, bool) {
	if index >= len(line) {
		return listMarker{}, false
	}

	switch c := line[index]; c {
	case '-', '+', '*':
		if !isSpaceTabOrEnd(line, index+1) {
			return listMarker{}, false
		}
		return listMarker{bullet: c, indexAfter: index + 1}, true
	}

	start := 0
	digits := 0
	i := index
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		if digits == maxOrderedDigits {
			return listMarker{}, false
		}
		start = start*10 + int(line[i]-'0')
		digits++
		i++
	}
	if digits == 0 || i >= len(line) || (line[i] != '.' && line[i] != ')') {
		return listMarker{}, false
	}
	if !isSpaceTabOrEnd(line, i+1) {
		return listMarker{}, false
	}
	return listMarker{ordered: true, start: start, delimiter: line[i], indexAfter: i + 1}, true
}

func newListAttrs(marker listMarker) *mdast.ListAttrs {
	if marker.ordered {
		return &mdast.ListAttrs{
			Ordered:     true,
			StartNumber: marker.start,
			Delimiter:   string(marker.delimiter),
			Tight:       true,
		}
	}
	return &mdast.ListAttrs{BulletMarker: string(marker.bullet), Tight: true}
}

// listsMatch reports whether an item with marker continues list.
func listsMatch(list *mdast.ListAttrs, marker listMarker) bool {
	if list.Ordered != marker.ordered {
		return false
	}
	if marker.ordered {
		return list.Delimiter == string(marker.delimiter)
	}
	return list.BulletMarker == string(marker.bullet)
}
