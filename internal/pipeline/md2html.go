package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/theamazingmrb/portfolio-sub000/internal/slug"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	// ToHTML renders body as an HTML fragment, naming headings through ids.
	ToHTML(body string, ids *slug.Slugger) (string, error)
	// TableOfContents parses body again and renders a navigation fragment
	// linking to its headings. Returns "" when no heading is in range.
	TableOfContents(body string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md  goldmark.Markdown
	toc TOCOptions
}

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*GoldmarkConverter)

// WithTOCOptions sets heading depth, numbering and title for the table of contents.
func WithTOCOptions(opts TOCOptions) ConverterOption {
	return func(c *GoldmarkConverter) {
		c.toc = opts
	}
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// automatic heading IDs and raw HTML pass-through.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	c := &GoldmarkConverter{toc: DefaultTOCOptions()}
	for _, opt := range opts {
		opt(c)
	}
	c.toc = c.toc.normalized()

	c.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(), // ## Heading {#custom-id}
			parser.WithASTTransformers(util.Prioritized(uniqueHeadingIDs{}, 100)),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // authors embed iframes and figures; content is trusted
		),
	)
	return c
}

// ToHTML converts body to an HTML fragment. A nil ids gets a fresh Slugger.
func (c *GoldmarkConverter) ToHTML(body string, ids *slug.Slugger) (string, error) {
	if ids == nil {
		ids = slug.New()
	}

	var buf bytes.Buffer
	pc := parser.NewContext(parser.WithIDs(ids))
	if err := c.md.Convert([]byte(body), &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// TableOfContents runs an independent parse of body. It uses its own Slugger,
// which assigns the same IDs as the main pass because both see the headings
// in the same order through the same slug function and the same
// duplicate renaming.
func (c *GoldmarkConverter) TableOfContents(body string) (string, error) {
	src := []byte(body)
	pc := parser.NewContext(parser.WithIDs(slug.New()))
	doc := c.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	headings := collectHeadings(doc, src, c.toc.MinDepth, c.toc.MaxDepth)
	return generateTOC(headings, c.toc), nil
}

// uniqueHeadingIDs renames a heading id that repeats an earlier heading's id,
// typically an explicit {#id} goldmark accepted as is. Both the rendered body
// and the table of contents read the renamed id from the AST.
type uniqueHeadingIDs struct{}

// Transform implements parser.ASTTransformer.
func (uniqueHeadingIDs) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	ids, ok := pc.IDs().(*slug.Slugger)
	if !ok {
		return
	}

	seen := make(map[string]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, isHeading := n.(*ast.Heading)
		if !entering || !isHeading {
			return ast.WalkContinue, nil
		}
		attr, _ := h.AttributeString("id")
		id, _ := attr.([]byte)
		if len(id) == 0 {
			return ast.WalkSkipChildren, nil
		}
		if seen[string(id)] {
			id = []byte(ids.Unique(string(id)))
			h.SetAttributeString("id", id)
		}
		seen[string(id)] = true
		return ast.WalkSkipChildren, nil
	})
}
