package pipeline

import (
	"fmt"

	"github.com/theamazingmrb/portfolio-sub000/internal/slug"
)

// Rendered is the HTML produced for one post body.
type Rendered struct {
	HTML string // body fragment, ready to inject into a page
	TOC  string // navigation fragment, "" when the body has no listed headings
}

// Renderer runs the whole body pipeline: preprocess, convert, build the TOC,
// then the tree passes. It holds no per-document state and is safe for
// concurrent use.
type Renderer struct {
	preprocessor MarkdownPreprocessor
	converter    HTMLConverter
	codeBlocks   *CodeBlockPass
	assetBaseURL string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithConverter replaces the markdown converter.
func WithConverter(c HTMLConverter) RendererOption {
	return func(r *Renderer) { r.converter = c }
}

// WithCodeTheme picks the chroma style whose background code blocks use.
func WithCodeTheme(theme string) RendererOption {
	return func(r *Renderer) { r.codeBlocks = NewCodeBlockPass(theme) }
}

// WithAssetBaseURL resolves relative asset paths against base.
func WithAssetBaseURL(base string) RendererOption {
	return func(r *Renderer) { r.assetBaseURL = base }
}

// NewRenderer creates a Renderer with goldmark defaults and the monokai background.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		preprocessor: &CommonMarkPreprocessor{},
		converter:    NewGoldmarkConverter(),
		codeBlocks:   NewCodeBlockPass(DefaultCodeTheme),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts body. Each stage consumes the previous stage's full output.
// Recovers from internal panics so one bad document cannot crash the caller.
func (r *Renderer) Render(body string) (out Rendered, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, rec)
		}
	}()

	body = r.preprocessor.PreprocessMarkdown(body)

	ids := slug.New()
	fragment, err := r.converter.ToHTML(body, ids)
	if err != nil {
		return Rendered{}, err
	}

	toc, err := r.converter.TableOfContents(body)
	if err != nil {
		return Rendered{}, fmt.Errorf("building table of contents: %w", err)
	}

	fragment, err = Process(fragment,
		&TOCInsertPass{Fragment: toc},
		&HeadingIDPass{IDs: ids},
		r.codeBlocks,
		&AssetPathPass{BaseURL: r.assetBaseURL},
	)
	if err != nil {
		return Rendered{}, err
	}

	return Rendered{HTML: fragment, TOC: toc}, nil
}
