package inline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/inline"
	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/parser"
)

// resolveFirst parses src, resolves inlines and dumps the children of the
// first block.
func resolveFirst(t *testing.T, proc *inline.Processor, src string) string {
	t.Helper()

	doc, refs := parser.New().Parse([]byte(src))
	proc.ResolveTree(doc, refs)
	require.NotNil(t, doc.FirstChild, "no blocks parsed from %q", src)
	return mdast.DumpChildren(doc.FirstChild)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "plain text",
			src:  "hello world",
			want: `Text("hello world")`,
		},
		{
			name: "emphasis",
			src:  "*a*",
			want: `Emphasis(Text("a"))`,
		},
		{
			name: "strong containing emphasis",
			src:  "**a *b* c**",
			want: `Strong(Text("a "), Emphasis(Text("b")), Text(" c"))`,
		},
		{
			name: "emphasis containing strong",
			src:  "*foo**bar**baz*",
			want: `Emphasis(Text("foo"), Strong(Text("bar")), Text("baz"))`,
		},
		{
			name: "rule of three keeps inner run literal",
			src:  "*foo**bar*",
			want: `Emphasis(Text("foo**bar"))`,
		},
		{
			name: "triple run nests strong in emphasis",
			src:  "***strong emph***",
			want: `Emphasis(Strong(Text("strong emph")))`,
		},
		{
			name: "multiples of three may match",
			src:  "foo******bar*********baz",
			want: `Text("foo"), Strong(Strong(Strong(Text("bar")))), Text("***baz")`,
		},
		{
			name: "intraword underscore",
			src:  "_foo_bar",
			want: `Text("_foo_bar")`,
		},
		{
			name: "underscore emphasis",
			src:  "_foo_ bar",
			want: `Emphasis(Text("foo")), Text(" bar")`,
		},
		{
			name: "unmatched delimiter",
			src:  "a * b",
			want: `Text("a * b")`,
		},
		{
			name: "inline link with title",
			src:  `[a](/u "t")`,
			want: `Link[/u "t"](Text("a"))`,
		},
		{
			name: "inline link with empty destination",
			src:  "[a]()",
			want: `Link(Text("a"))`,
		},
		{
			name: "inline link with angle destination",
			src:  "[a](<b c>)",
			want: `Link[b c](Text("a"))`,
		},
		{
			name: "title needs whitespace",
			src:  `[link]("title")`,
			want: `Link["title"](Text("link"))`,
		},
		{
			name: "image",
			src:  "![alt *x*](/i.png)",
			want: `Image[/i.png](Text("alt "), Emphasis(Text("x")))`,
		},
		{
			name: "bang without bracket",
			src:  "hi!",
			want: `Text("hi!")`,
		},
		{
			name: "shortcut reference",
			src:  "[foo]\n\n[foo]: /url",
			want: `Link[/url](Text("foo"))`,
		},
		{
			name: "full reference is case-insensitive",
			src:  "[x][Foo]\n\n[foo]: /u \"T\"",
			want: `Link[/u "T"](Text("x"))`,
		},
		{
			name: "collapsed reference",
			src:  "[Foo][]\n\n[foo]: /u",
			want: `Link[/u](Text("Foo"))`,
		},
		{
			name: "undefined full reference blocks shortcut",
			src:  "[foo][bar]\n\n[foo]: /u",
			want: `Text("[foo][bar]")`,
		},
		{
			name: "inline beats reference",
			src:  "[foo](/inline)\n\n[foo]: /ref",
			want: `Link[/inline](Text("foo"))`,
		},
		{
			name: "undefined shortcut is text",
			src:  "[nope]",
			want: `Text("[nope]")`,
		},
		{
			name: "links do not nest",
			src:  "[a [b](/i) c](/o)",
			want: `Text("[a "), Link[/i](Text("b")), Text(" c](/o)")`,
		},
		{
			name: "links nest inside images",
			src:  "![a [b](/i)](/img)",
			want: `Image[/img](Text("a "), Link[/i](Text("b")))`,
		},
		{
			name: "brackets bound emphasis",
			src:  "*[a*](/u)",
			want: `Text("*"), Link[/u](Text("a*"))`,
		},
		{
			name: "code span",
			src:  "`` a`b ``",
			want: `CodeSpan("a` + "`" + `b")`,
		},
		{
			name: "code span of spaces keeps them",
			src:  "`  `",
			want: `CodeSpan("  ")`,
		},
		{
			name: "code span hides emphasis",
			src:  "`*a*`",
			want: `CodeSpan("*a*")`,
		},
		{
			name: "code span joins lines",
			src:  "`a\nb`",
			want: `CodeSpan("a b")`,
		},
		{
			name: "unclosed backticks",
			src:  "`foo",
			want: "Text(\"`foo\")",
		},
		{
			name: "uri autolink",
			src:  "<https://x.io/a>",
			want: `Link[https://x.io/a](Text("https://x.io/a"))`,
		},
		{
			name: "email autolink",
			src:  "<me@x.io>",
			want: `Link[mailto:me@x.io](Text("me@x.io"))`,
		},
		{
			name: "inline html",
			src:  `a <b class="x">c</b>`,
			want: `Text("a "), HTMLInline("<b class=\"x\">"), Text("c"), HTMLInline("</b>")`,
		},
		{
			name: "html comment",
			src:  "x <!-- y --> z",
			want: `Text("x "), HTMLInline("<!-- y -->"), Text(" z")`,
		},
		{
			name: "lone angle bracket",
			src:  "a < b",
			want: `Text("a < b")`,
		},
		{
			name: "entities",
			src:  "&amp; &copy; &#35; &#0; &nope;",
			want: `Text("& © # ` + "�" + ` &nope;")`,
		},
		{
			name: "backslash escapes",
			src:  `\*not\* \q`,
			want: `Text("*not* \\q")`,
		},
		{
			name: "hard break from spaces",
			src:  "a  \nb",
			want: `Text("a"), HardBreak, Text("b")`,
		},
		{
			name: "hard break from backslash",
			src:  "a\\\nb",
			want: `Text("a"), HardBreak, Text("b")`,
		},
		{
			name: "soft break",
			src:  "a \nb",
			want: `Text("a"), SoftBreak, Text("b")`,
		},
		{
			name: "trailing backslash is literal",
			src:  `a\`,
			want: `Text("a\\")`,
		},
	}

	proc := inline.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, resolveFirst(t, proc, tt.src))
		})
	}
}

func TestResolve_Heading(t *testing.T) {
	t.Parallel()

	doc, refs := parser.New().Parse([]byte("# *a* b\n\npara"))
	inline.New().ResolveTree(doc, refs)

	assert.Equal(t, `Document(Heading[1](Emphasis(Text("a")), Text(" b")), Paragraph(Text("para")))`, mdast.Dump(doc))
	assert.Nil(t, doc.FirstChild.Block.Raw)
}

func TestResolve_NilTable(t *testing.T) {
	t.Parallel()

	para := mdast.NewNode(mdast.NodeParagraph)
	para.Block.Raw = []byte("[foo] *x*")
	inline.New().Resolve(para, nil)

	assert.Equal(t, `Text("[foo] "), Emphasis(Text("x"))`, mdast.DumpChildren(para))
}

func TestResolve_ReferenceStyle(t *testing.T) {
	t.Parallel()

	var builder linkref.Builder
	builder.Add(linkref.Definition{Label: "Foo", Normalized: linkref.NormalizeLabel("Foo"), Destination: "/f"})
	refs := builder.Build()

	tests := []struct {
		raw   string
		style mdast.ReferenceStyle
		label string
	}{
		{raw: "[x](/f)", style: mdast.RefStyleInline},
		{raw: "[x][foo]", style: mdast.RefStyleFull, label: "foo"},
		{raw: "[FOO][]", style: mdast.RefStyleCollapsed, label: "FOO"},
		{raw: "[foo]", style: mdast.RefStyleShortcut, label: "foo"},
		{raw: "<http://f>", style: mdast.RefStyleAutolink},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			para := mdast.NewNode(mdast.NodeParagraph)
			para.Block.Raw = []byte(tt.raw)
			inline.New().Resolve(para, refs)

			link := para.FirstChild
			require.NotNil(t, link)
			require.Equal(t, mdast.NodeLink, link.Kind)
			assert.Equal(t, tt.style, link.Inline.Link.ReferenceStyle)
			assert.Equal(t, tt.label, link.Inline.Link.ReferenceLabel)
		})
	}
}

var strikeKind = mdast.RegisterKind("TestInlineStrike", false)

type strikeProcessor struct{}

func (strikeProcessor) Char() byte     { return '~' }
func (strikeProcessor) MinLength() int { return 1 }

func (strikeProcessor) Delimiters(opener, closer inline.DelimiterRun) int {
	if opener.Length() == closer.Length() && opener.Length() <= 2 {
		return opener.Length()
	}
	return 0
}

func (strikeProcessor) Wrap(int) *mdast.Node {
	return mdast.NewNode(strikeKind)
}

func TestResolve_CustomDelimiter(t *testing.T) {
	t.Parallel()

	proc := inline.New(inline.WithDelimiterProcessor(strikeProcessor{}))
	got := resolveFirst(t, proc, "~~a~~ ~b~ ~~c~")
	assert.Equal(t, `TestInlineStrike(Text("a")), Text(" "), TestInlineStrike(Text("b")), Text(" ~~c~")`, got)

	assert.Equal(t, []byte("*_~"), proc.DelimiterChars())

	// Without the processor '~' is plain text.
	assert.Equal(t, `Text("~~a~~")`, resolveFirst(t, inline.New(), "~~a~~"))
}

func TestResolve_FirstDelimiterProcessorWins(t *testing.T) {
	t.Parallel()

	proc := inline.New(inline.WithDelimiterProcessor(strikeProcessorFor('*')))
	assert.Equal(t, `TestInlineStrike(Text("a"))`, resolveFirst(t, proc, "*a*"))
}

type charStrike struct {
	strikeProcessor
	char byte
}

func (c charStrike) Char() byte { return c.char }

func strikeProcessorFor(c byte) inline.DelimiterProcessor {
	return charStrike{char: c}
}

func TestNew_NonASCIIDelimiterPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		inline.New(inline.WithDelimiterProcessor(strikeProcessorFor(0xC3)))
	})
}

func TestEmphasisProcessor_Wrap(t *testing.T) {
	t.Parallel()

	em := inline.EmphasisProcessor('_').Wrap(1)
	assert.Equal(t, mdast.NodeEmphasis, em.Kind)
	assert.Equal(t, "_", em.Inline.Delimiter)

	strong := inline.EmphasisProcessor('*').Wrap(2)
	assert.Equal(t, mdast.NodeStrong, strong.Kind)
	assert.Equal(t, 2, strong.Inline.EmphasisLevel)
	assert.Equal(t, "**", strong.Inline.Delimiter)
}

func FuzzResolve(f *testing.F) {
	seeds := []string{
		"**a *b* c**",
		"*foo**bar*",
		"[a [b](/i) c](/o)",
		"![x](<y z> 'q')",
		"`a``b`",
		"<a href='x'> &amp; \\*",
		"[foo]\n\n[foo]: /bar",
		"_*_*_*",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	proc := inline.New()
	f.Fuzz(func(t *testing.T, src string) {
		doc, refs := parser.New().Parse([]byte(src))
		proc.ResolveTree(doc, refs)

		mdast.Walk(doc, func(n *mdast.Node, entering bool) mdast.WalkStatus {
			if n.Block != nil && n.Block.Raw != nil {
				t.Fatalf("unresolved raw content in %s", n.Kind)
			}
			if n.Kind == mdast.NodeText && len(n.Inline.Text) == 0 {
				t.Fatalf("empty text node in %q", src)
			}
			return mdast.WalkContinue
		})
	})
}
