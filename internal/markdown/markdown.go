package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// TextProcessor renders post and comment text for display. Only a small
// subset of markdown is enabled; everything else stays literal text.
type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(false)
	policy.AllowRelativeURLs(true)

	return &TextProcessor{md: md, policy: policy}
}

// Render converts text to HTML and strips anything the sanitizer rejects.
func (tp *TextProcessor) Render(text string) string {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		// fall back to plain escaping via the sanitizer
		return tp.policy.Sanitize(text)
	}
	return tp.policy.Sanitize(strings.TrimSpace(buf.String()))
}
