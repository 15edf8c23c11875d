package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
)

// Default heading depth range for the table of contents.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// tocMarker matches the text of a heading that asks for an inline TOC.
var tocMarker = regexp.MustCompile(`(?i)^\s*(?:toc|contents|table[ -]of[ -]contents?)\s*$`)

// IsTOCMarker reports whether heading text requests an inline table of contents.
func IsTOCMarker(text string) bool {
	return tocMarker.MatchString(text)
}

// TOCOptions controls which headings appear in the table of contents and how.
type TOCOptions struct {
	MinDepth int    // shallowest heading level listed (default 2, skips H1)
	MaxDepth int    // deepest heading level listed (default 3)
	Numbered bool   // prefix entries with "1.", "1.1.", ...
	Title    string // optional caption rendered above the list
}

// DefaultTOCOptions lists H2 and H3 without numbering.
func DefaultTOCOptions() TOCOptions {
	return TOCOptions{MinDepth: DefaultTOCMinDepth, MaxDepth: DefaultTOCMaxDepth}
}

func (o TOCOptions) normalized() TOCOptions {
	if o.MinDepth < 1 || o.MinDepth > 6 {
		o.MinDepth = DefaultTOCMinDepth
	}
	if o.MaxDepth < 1 || o.MaxDepth > 6 {
		o.MaxDepth = DefaultTOCMaxDepth
	}
	if o.MaxDepth < o.MinDepth {
		o.MaxDepth = o.MinDepth
	}
	return o
}

// headingInfo represents a heading found in the markdown AST.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// collectHeadings walks doc and returns headings between minDepth and maxDepth,
// skipping headings without IDs and TOC marker headings.
func collectHeadings(doc ast.Node, src []byte, minDepth, maxDepth int) []headingInfo {
	var headings []headingInfo
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < minDepth || h.Level > maxDepth {
			return ast.WalkSkipChildren, nil
		}

		id, ok := h.AttributeString("id")
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		idBytes, ok := id.([]byte)
		if !ok || len(idBytes) == 0 {
			return ast.WalkSkipChildren, nil
		}

		text := strings.TrimSpace(html.UnescapeString(nodeText(h, src)))
		if IsTOCMarker(text) {
			return ast.WalkSkipChildren, nil
		}
		headings = append(headings, headingInfo{Level: h.Level, ID: string(idBytes), Text: text})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// nodeText concatenates the visible text below n: text segments, code spans,
// link labels and image alt text. Raw inline HTML contributes nothing.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(src))
		case *ast.RawHTML:
		default:
			b.WriteString(nodeText(c, src))
		}
	}
	return b.String()
}

// numberingState tracks hierarchical numbering for TOC entries.
// The first heading is depth 1 whatever its level, and skipped levels do not
// add depth: H2 followed by H4 nests the H4 one step.
type numberingState struct {
	counters [6]int // counters[0] = depth 1 count, etc.
	open     []int  // heading levels of the current ancestor chain
}

// next returns the number string and effective depth for a heading level.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	for len(n.open) > 0 && n.open[len(n.open)-1] >= level {
		n.open = n.open[:len(n.open)-1]
	}
	n.open = append(n.open, level)
	effectiveDepth = len(n.open)

	for i := effectiveDepth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[effectiveDepth-1]++

	parts := make([]string, effectiveDepth)
	for i := range effectiveDepth {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// generateTOC renders headings as a flat list of indented entries.
// Uses <div> elements instead of <ul>/<li> to avoid list-style conflicts with
// site stylesheets; depth is exposed as a class for styling.
func generateTOC(headings []headingInfo, opts TOCOptions) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)

	if opts.Title != "" {
		buf.WriteString(`<p class="toc-title">`)
		buf.WriteString(html.EscapeString(opts.Title))
		buf.WriteString(`</p>`)
	}

	buf.WriteString(`<div class="toc-list">`)

	numbering := &numberingState{}
	for _, h := range headings {
		num, depth := numbering.next(h.Level)

		fmt.Fprintf(&buf, `<div class="toc-item toc-depth-%d"`, depth)
		if depth > 1 {
			fmt.Fprintf(&buf, ` style="padding-left:%.1fem"`, float64(depth-1)*1.5)
		}
		buf.WriteString(`><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		if opts.Numbered {
			buf.WriteString(num)
			buf.WriteString(` `)
		}
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a></div>`)
	}

	buf.WriteString(`</div></nav>`)
	return buf.String()
}
