package markdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/ext/strikethrough"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

const benchDocument = `# Title

Some *emphasis*, **strong** text, ` + "`code`" + ` and a [link](https://example.com "title").

> A quote with a list:
>
> 1. one
> 2. two
>    - nested ~~gone~~

` + "```go\nfunc main() {}\n```\n" + `
[ref]: /url
`

func benchSource(n int) []byte {
	return []byte(strings.Repeat(benchDocument+"\n", n))
}

func BenchmarkConvertHTML(b *testing.B) {
	engine := markdown.New()
	src := benchSource(50)
	var buf bytes.Buffer

	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := engine.Convert(src, &buf, markdown.FormatHTML); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertText(b *testing.B) {
	engine := markdown.New()
	src := benchSource(50)
	var buf bytes.Buffer

	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := engine.Convert(src, &buf, markdown.FormatText); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertExtensions(b *testing.B) {
	engine := markdown.New(markdown.WithExtensions(strikethrough.New(), headingid.New()))
	src := benchSource(50)
	var buf bytes.Buffer

	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := engine.Convert(src, &buf, markdown.FormatHTML); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	engine := markdown.New()
	src := benchSource(50)

	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		engine.Parse(src)
	}
}
