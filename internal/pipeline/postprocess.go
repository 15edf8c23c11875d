package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/theamazingmrb/portfolio-sub000/internal/slug"
)

// ErrPostProcess indicates the HTML fragment could not be parsed or rendered.
var ErrPostProcess = errors.New("HTML post-processing failed")

// Pass mutates a parsed HTML fragment. root is a container node whose
// children are the fragment's top-level nodes.
type Pass interface {
	Apply(root *html.Node) error
}

// PassFunc adapts a function to Pass.
type PassFunc func(root *html.Node) error

// Apply calls f(root).
func (f PassFunc) Apply(root *html.Node) error { return f(root) }

// Process parses fragment once, runs passes in order and serializes the result.
func Process(fragment string, passes ...Pass) (string, error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPostProcess, err)
	}
	for _, p := range passes {
		if err := p.Apply(root); err != nil {
			return "", fmt.Errorf("%w: %v", ErrPostProcess, err)
		}
	}
	out, err := renderFragment(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPostProcess, err)
	}
	return out, nil
}

// bodyContext parses fragments as if they sat inside <body>, which avoids the
// parser adding <html><head><body> wrappers.
func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
}

// parseFragment parses content and wraps the nodes in a container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext())
	if err != nil {
		return nil, err
	}
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children only.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// ---------------------------------------------------------------------------
// Tree helpers
// ---------------------------------------------------------------------------

// findAll returns the element nodes below n, in document order, for which match is true.
// Collecting first lets callers restructure the tree without disturbing the walk.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func isHeading(n *html.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// textContent concatenates every descendant text node in source order.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	v, _ := getAttr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// addClass appends class to n's class list unless it is already there.
func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	v, _ := getAttr(n, "class")
	setAttr(n, "class", strings.TrimSpace(v+" "+class))
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// ---------------------------------------------------------------------------
// Heading IDs
// ---------------------------------------------------------------------------

// HeadingIDPass gives every heading a unique id. Markdown headings arrive
// with unique ids already, so in practice it names raw HTML headings: ids
// that are missing or repeat an earlier heading's id are drawn from IDs.
type HeadingIDPass struct {
	IDs *slug.Slugger
}

// Apply implements Pass.
func (p *HeadingIDPass) Apply(root *html.Node) error {
	ids := p.IDs
	if ids == nil {
		ids = slug.New()
	}

	headings := findAll(root, isHeading)
	seen := make(map[string]bool, len(headings))
	var pending []*html.Node

	// Reserve every kept id before generating any, so a generated slug can
	// never collide with an id that appears later in the document.
	for _, h := range headings {
		id, ok := getAttr(h, "id")
		if !ok || id == "" || seen[id] {
			pending = append(pending, h)
			continue
		}
		seen[id] = true
		ids.Reserve(id)
	}

	for _, h := range pending {
		base := textContent(h)
		if id, ok := getAttr(h, "id"); ok && id != "" {
			base = id
		}
		setAttr(h, "id", ids.Slug(base))
	}
	return nil
}

// ---------------------------------------------------------------------------
// TOC insertion
// ---------------------------------------------------------------------------

// TOCInsertPass places Fragment right after the first heading whose text asks
// for a table of contents ("Table of Contents", "Contents", "TOC").
type TOCInsertPass struct {
	Fragment string
}

// Apply implements Pass.
func (p *TOCInsertPass) Apply(root *html.Node) error {
	if strings.TrimSpace(p.Fragment) == "" {
		return nil
	}
	markers := findAll(root, func(n *html.Node) bool {
		return isHeading(n) && IsTOCMarker(textContent(n))
	})
	if len(markers) == 0 {
		return nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(p.Fragment), bodyContext())
	if err != nil {
		return err
	}
	marker := markers[0]
	next := marker.NextSibling
	for _, n := range nodes {
		marker.Parent.InsertBefore(n, next)
	}
	return nil
}
