package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// maxLiteral bounds the quoted literal shown per node.
const maxLiteral = 60

// TreeOptions controls FormatTree.
type TreeOptions struct {
	// Positions appends each node's source span.
	Positions bool
}

// FormatTree renders the subtree at root one node per line, children
// indented under their parent with box-drawing guides:
//
//	Document
//	└── Heading[1]
//	    └── Text "T"
func (s *Styles) FormatTree(root *mdast.Node, opts TreeOptions) string {
	var sb strings.Builder
	s.formatNode(&sb, root, "", "", opts)
	return sb.String()
}

func (s *Styles) formatNode(sb *strings.Builder, n *mdast.Node, lead, childLead string, opts TreeOptions) {
	sb.WriteString(s.Guide.Render(lead))
	sb.WriteString(s.label(n))
	if opts.Positions && n.Pos.IsValid() {
		sb.WriteString(" ")
		sb.WriteString(s.Position.Render("@" + n.Pos.String()))
	}
	sb.WriteByte('\n')

	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Next == nil {
			s.formatNode(sb, child, childLead+"└── ", childLead+"    ", opts)
		} else {
			s.formatNode(sb, child, childLead+"├── ", childLead+"│   ", opts)
		}
	}
}

func (s *Styles) label(n *mdast.Node) string {
	kind := s.InlineKind
	if n.IsBlock() {
		kind = s.BlockKind
	}

	out := kind.Render(n.Kind.String())
	if attrs := mdast.Attrs(n); attrs != "" {
		out += s.Attr.Render("[" + attrs + "]")
	}

	literal := n.Literal()
	if literal == nil && n.Block != nil && !n.HasChildren() {
		literal = n.Block.Raw
	}
	if literal != nil {
		out += " " + s.Literal.Render(quoteTruncated(string(literal)))
	}
	return out
}

func quoteTruncated(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLiteral {
		return strconv.Quote(s)
	}
	return strconv.Quote(string(runes[:maxLiteral-1])) + "…"
}
