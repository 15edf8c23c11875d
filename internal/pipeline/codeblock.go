package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Code block scaffold names. Client-side scripts look these up to attach
// copy buttons and syntax colouring.
const (
	CodeBlockClass     = "code-block"
	CodeLanguageClass  = "code-block-language"
	CodeAttr           = "data-code"
	CodeLanguageAttr   = "data-language"
	PlainTextLabel     = "text"
	DefaultCodeTheme   = "monokai"
	DefaultCodeBgColor = "#1e1e1e"
)

var languageClassPrefixes = []string{"language-", "lang-"}

// KnownCodeTheme reports whether name is a registered chroma style.
func KnownCodeTheme(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// CodeThemes lists the registered chroma style names.
func CodeThemes() []string {
	return styles.Names()
}

// ThemeBackground returns the background colour of the named chroma style,
// or DefaultCodeBgColor when the style is unknown or sets none.
func ThemeBackground(name string) string {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return DefaultCodeBgColor
	}
	bg := style.Get(chroma.Background).Background
	if !bg.IsSet() {
		return DefaultCodeBgColor
	}
	return bg.String()
}

// LanguageLabel returns the display name for a fence language tag, such as
// "Go" for "go" or "JavaScript" for "js". Unknown tags are returned as given
// and an empty tag is labelled PlainTextLabel.
func LanguageLabel(tag string) string {
	if tag == "" {
		return PlainTextLabel
	}
	if lexer := lexers.Get(tag); lexer != nil {
		if name := lexer.Config().Name; name != "" {
			return name
		}
	}
	return tag
}

// CodeBlockPass wraps every <pre> whose only child is <code>:
//
//	<div class="code-block" data-code="..." data-language="go" style="background-color:#272822">
//	  <div class="code-block-language">Go</div>
//	  <pre class="language-go"><code class="language-go">...</code></pre>
//	</div>
//
// data-code holds the code's text exactly as rendered, whitespace included.
type CodeBlockPass struct {
	Background string // CSS colour; empty means DefaultCodeBgColor
}

// NewCodeBlockPass uses the background of the named chroma style.
func NewCodeBlockPass(theme string) *CodeBlockPass {
	return &CodeBlockPass{Background: ThemeBackground(theme)}
}

// Apply implements Pass.
func (p *CodeBlockPass) Apply(root *html.Node) error {
	blocks := findAll(root, func(n *html.Node) bool {
		return n.DataAtom == atom.Pre && soleCode(n) != nil && !isWrapped(n)
	})
	for _, pre := range blocks {
		p.wrap(pre)
	}
	return nil
}

func (p *CodeBlockPass) wrap(pre *html.Node) {
	code := soleCode(pre)
	lang := codeLanguage(code, pre)
	if lang != "" {
		addClass(code, "language-"+lang)
		addClass(pre, "language-"+lang)
	}

	bg := p.Background
	if bg == "" {
		bg = DefaultCodeBgColor
	}

	wrapper := newElement(atom.Div,
		html.Attribute{Key: "class", Val: CodeBlockClass},
		html.Attribute{Key: CodeAttr, Val: textContent(code)},
		html.Attribute{Key: CodeLanguageAttr, Val: lang},
		html.Attribute{Key: "style", Val: "background-color:" + bg},
	)
	badge := newElement(atom.Div, html.Attribute{Key: "class", Val: CodeLanguageClass})
	badge.AppendChild(&html.Node{Type: html.TextNode, Data: LanguageLabel(lang)})

	parent := pre.Parent
	parent.InsertBefore(wrapper, pre)
	parent.RemoveChild(pre)
	wrapper.AppendChild(badge)
	wrapper.AppendChild(pre)
}

// soleCode returns pre's child when it is exactly one <code> element.
func soleCode(pre *html.Node) *html.Node {
	c := pre.FirstChild
	if c == nil || c.NextSibling != nil {
		return nil
	}
	if c.Type != html.ElementNode || c.DataAtom != atom.Code {
		return nil
	}
	return c
}

func isWrapped(pre *html.Node) bool {
	return pre.Parent != nil && pre.Parent.Type == html.ElementNode && hasClass(pre.Parent, CodeBlockClass)
}

// codeLanguage reads the tag from the first language-* or lang-* class on
// code, then on pre.
func codeLanguage(nodes ...*html.Node) string {
	for _, n := range nodes {
		classes, _ := getAttr(n, "class")
		for _, c := range strings.Fields(classes) {
			for _, prefix := range languageClassPrefixes {
				if lang, ok := strings.CutPrefix(c, prefix); ok && lang != "" {
					return lang
				}
			}
		}
	}
	return ""
}
