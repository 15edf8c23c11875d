package pipeline

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AssetPathPass resolves relative image, source and link paths against
// BaseURL, so posts can reference "images/diagram.png" next to their markdown.
// An empty or unparsable BaseURL leaves the fragment unchanged.
//
// Rewrites:
//   - img[src], source[src]: relative paths to media
//   - a[href]: relative paths (not anchors, not URLs)
//
// Leaves alone: root-relative paths ("/images/x.png"), absolute and
// protocol-relative URLs, data:, mailto: and tel: links, fragment anchors.
type AssetPathPass struct {
	BaseURL string
}

// Apply implements Pass.
func (p *AssetPathPass) Apply(root *html.Node) error {
	base, ok := parseBaseURL(p.BaseURL)
	if !ok {
		return nil
	}
	for _, n := range findAll(root, func(*html.Node) bool { return true }) {
		switch n.DataAtom {
		case atom.Img, atom.Source:
			rewriteAttr(n, "src", base)
		case atom.A:
			rewriteAttr(n, "href", base)
		}
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, bool) {
	if raw == "" {
		return nil, false
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// rewriteAttr rewrites a single attribute if it's a relative path.
func rewriteAttr(n *html.Node, attrName string, base *url.URL) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}
		ref, err := url.Parse(attr.Val)
		if err != nil {
			continue
		}
		n.Attr[i].Val = base.ResolveReference(ref).String()
	}
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasPrefix(path, "#") || strings.HasPrefix(path, "/") || strings.HasPrefix(path, "?") {
		return false
	}
	// Any scheme (http:, https:, data:, mailto:, tel:, file:) means absolute.
	if u, err := url.Parse(path); err != nil || u.Scheme != "" {
		return false
	}
	return true
}
