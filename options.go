package portfolio

import (
	"github.com/theamazingmrb/portfolio-sub000/internal/logging"
	"github.com/theamazingmrb/portfolio-sub000/internal/pipeline"
)

// Logger receives the warnings ListPosts and GetPost would otherwise swallow.
// Any value with Debugf, Infof, Warnf and Errorf methods satisfies it.
type Logger = logging.Logger

// TOCOptions controls which headings the table of contents lists.
type TOCOptions = pipeline.TOCOptions

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the diagnostic sink. Nil is ignored.
func WithLogger(l Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithExcerptLength sets the derived-excerpt cap in characters.
// Non-positive values keep the default of 240.
func WithExcerptLength(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.excerptLength = n
		}
	}
}

// WithReadingOptions tunes the reading-time estimate.
func WithReadingOptions(opts ReadingOptions) Option {
	return func(r *Repository) {
		r.reading = opts
	}
}

// WithDefaults overrides fallbacks for optional front-matter keys.
// Empty fields keep the built-in value.
func WithDefaults(d Defaults) Option {
	return func(r *Repository) {
		r.defaults = d.merged(DefaultPostDefaults())
	}
}

// WithTOCOptions sets the heading depth range, numbering and title of the
// table of contents.
func WithTOCOptions(opts TOCOptions) Option {
	return func(r *Repository) {
		r.toc = opts
	}
}

// WithCodeTheme selects the chroma style whose background colours code blocks.
func WithCodeTheme(name string) Option {
	return func(r *Repository) {
		r.codeTheme = name
	}
}

// WithAssetBaseURL resolves relative image and link targets in post bodies
// against base.
func WithAssetBaseURL(base string) Option {
	return func(r *Repository) {
		r.assetBaseURL = base
	}
}

// withRenderer swaps the body renderer. Used by tests.
func withRenderer(rd bodyRenderer) Option {
	return func(r *Repository) {
		r.renderer = rd
	}
}

