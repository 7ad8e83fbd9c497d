package document

import (
	"bytes"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is one table-of-contents entry extracted from a document body.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Preview is the rendered form of a document sent to the shell.
type Preview struct {
	Title string    `json:"title"`
	HTML  string    `json:"html"`
	TOC   []Heading `json:"toc"`
}

// Renderer converts document bodies to HTML with GFM extensions and
// syntax-highlighted code blocks.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with the extensions the shell expects.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.TaskList,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &Renderer{md: md}
}

// Render converts the document's markdown body to a Preview. The title
// comes from the envelope, falling back to the first heading in the body.
func (r *Renderer) Render(doc *Document) (*Preview, error) {
	source := []byte(doc.Content)

	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return nil, err
	}

	toc := r.headings(source)
	title := doc.Title
	if title == "" && len(toc) > 0 {
		title = toc[0].Text
	}

	return &Preview{
		Title: title,
		HTML:  buf.String(),
		TOC:   toc,
	}, nil
}

// headings walks the parsed body and collects its heading outline.
func (r *Renderer) headings(source []byte) []Heading {
	reader := text.NewReader(source)
	root := r.md.Parser().Parse(reader)

	var toc []Heading
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			txt := nodeText(h, source)
			toc = append(toc, Heading{
				Level:  h.Level,
				Text:   txt,
				Anchor: anchorFor(txt),
			})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil
	}
	return toc
}

func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}

var (
	anchorStrip    = regexp.MustCompile(`[^a-z0-9\-]`)
	anchorCollapse = regexp.MustCompile(`-+`)
)

// anchorFor derives a URL-safe fragment identifier from heading text.
func anchorFor(txt string) string {
	anchor := strings.ToLower(txt)
	anchor = strings.ReplaceAll(anchor, " ", "-")
	anchor = anchorStrip.ReplaceAllString(anchor, "")
	anchor = anchorCollapse.ReplaceAllString(anchor, "-")
	return strings.Trim(anchor, "-")
}
