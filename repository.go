package portfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/theamazingmrb/portfolio-sub000/internal/dateutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/derive"
	"github.com/theamazingmrb/portfolio-sub000/internal/fileutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/frontmatter"
	"github.com/theamazingmrb/portfolio-sub000/internal/logging"
	"github.com/theamazingmrb/portfolio-sub000/internal/pipeline"
)

// bodyRenderer turns a markdown body into HTML plus a table of contents.
type bodyRenderer interface {
	Render(body string) (pipeline.Rendered, error)
}

// Compile-time interface checks.
var (
	_ bodyRenderer = (*pipeline.Renderer)(nil)
	_ Logger       = (*logging.Recorder)(nil)
)

// Repository reads posts from a content directory.
// It holds no mutable state and is safe for concurrent use.
type Repository struct {
	fsys   fs.FS
	logger Logger

	excerptLength int
	reading       ReadingOptions
	defaults      Defaults
	toc           TOCOptions
	codeTheme     string
	assetBaseURL  string
	renderer      bodyRenderer
}

// NewRepository creates a Repository over fsys, whose root is the content
// directory.
func NewRepository(fsys fs.FS, opts ...Option) *Repository {
	r := &Repository{
		fsys:          fsys,
		logger:        logging.New(logging.DefaultLevel, logging.FormatText, os.Stderr),
		excerptLength: derive.DefaultExcerptLength,
		defaults:      DefaultPostDefaults(),
		toc:           pipeline.DefaultTOCOptions(),
		codeTheme:     pipeline.DefaultCodeTheme,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.renderer == nil {
		r.renderer = pipeline.NewRenderer(
			pipeline.WithConverter(pipeline.NewGoldmarkConverter(pipeline.WithTOCOptions(r.toc))),
			pipeline.WithCodeTheme(r.codeTheme),
			pipeline.WithAssetBaseURL(r.assetBaseURL),
		)
	}
	return r
}

// Open creates a Repository over the directory at dir.
func Open(dir string, opts ...Option) *Repository {
	return NewRepository(os.DirFS(dir), opts...)
}

// ListPosts returns every valid post, newest first, without rendered HTML.
// Invalid files are skipped and an unreadable directory yields an empty
// list; both are logged.
func (r *Repository) ListPosts() []Post {
	ids, err := r.ListPostIDs()
	if err != nil {
		r.logger.Errorf("listing posts: %v", err)
		return []Post{}
	}

	posts := make([]Post, 0, len(ids))
	for _, id := range ids {
		p, _, err := r.load(id)
		if err != nil {
			r.logger.Warnf("skipping %s: %v", fileutil.PostFilename(id), err)
			continue
		}
		posts = append(posts, p)
	}

	slices.SortStableFunc(posts, func(a, b Post) int {
		return dateutil.ComparePostDates(b.Date, a.Date)
	})
	return posts
}

// GetPost returns the post stored as <id>.md with its HTML and table of
// contents rendered.
func (r *Repository) GetPost(id string) (Post, error) {
	if err := fileutil.ValidatePostID(id); err != nil {
		return Post{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if _, err := fs.Stat(r.fsys, "."); err != nil {
		return Post{}, fmt.Errorf("%w: %v", ErrContentUnreadable, err)
	}

	p, body, err := r.load(id)
	if err != nil {
		return Post{}, err
	}

	out, err := r.renderer.Render(body)
	if err != nil {
		return Post{}, fmt.Errorf("post %q: %w", id, err)
	}
	p.ContentHTML = out.HTML
	p.TableOfContents = out.TOC
	return p, nil
}

// ListPostIDs returns the ids of every content file in lexical order.
// Files are not opened, so invalid posts are included.
func (r *Repository) ListPostIDs() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnreadable, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if id, ok := fileutil.PostID(e.Name()); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// load reads and parses one post, returning its listing form and markdown body.
func (r *Repository) load(id string) (Post, string, error) {
	raw, err := fs.ReadFile(r.fsys, fileutil.PostFilename(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, "", fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return Post{}, "", fmt.Errorf("%w: %v", ErrContentUnreadable, err)
	}

	fm, body, err := frontmatter.Parse(string(raw))
	if err != nil {
		r.logger.Warnf("post %q: %v; reading without front matter", id, err)
	}
	if err := fm.Validate(); err != nil {
		return Post{}, "", fmt.Errorf("post %q: %w", id, err)
	}

	est := derive.EstimateReading(body, r.reading)
	if est.UnpairedFence {
		r.logger.Warnf("post %q: unpaired code fence, last block not counted", id)
	}

	excerpt := derive.Excerpt(body, fm.Excerpt, r.excerptLength)
	return newPost(id, fm, excerpt, est.Minutes, r.defaults), body, nil
}
