package portfolio

import (
	"errors"

	"github.com/theamazingmrb/portfolio-sub000/internal/frontmatter"
	"github.com/theamazingmrb/portfolio-sub000/internal/pipeline"
)

// Sentinel errors for repository operations.
var (
	ErrNotFound          = errors.New("post not found")
	ErrContentUnreadable = errors.New("content directory unreadable")

	// ErrMissingRequiredField means the front matter lacks title or date.
	ErrMissingRequiredField = frontmatter.ErrMissingRequiredField

	// ErrMalformedFrontMatter is only ever logged: the post is read with
	// empty front matter instead.
	ErrMalformedFrontMatter = frontmatter.ErrMalformed

	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
