package portfolio

import (
	"strings"

	"github.com/theamazingmrb/portfolio-sub000/internal/derive"
	"github.com/theamazingmrb/portfolio-sub000/internal/frontmatter"
)

// Fallback values for optional front-matter keys.
const (
	DefaultCategory    = "Uncategorized"
	DefaultCoverImage  = "/images/blog/default-cover.jpg"
	DefaultAuthor      = "Anonymous"
	DefaultAuthorImage = "/images/blog/default-author.jpg"
)

// Post is one blog post. Listings leave ContentHTML and TableOfContents empty.
type Post struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	LastUpdated     string   `json:"lastUpdated"`
	Excerpt         string   `json:"excerpt"`
	ReadingTime     int      `json:"readingTime"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category"`
	CoverImage      string   `json:"coverImage"`
	Author          string   `json:"author"`
	AuthorImage     string   `json:"authorImage"`
	RelatedPosts    []string `json:"relatedPosts"`
	ContentHTML     string   `json:"contentHtml"`
	TableOfContents string   `json:"tableOfContents"`
}

// HasTag reports whether the post carries tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Defaults fills optional keys a post's front matter leaves out.
type Defaults struct {
	Category    string
	CoverImage  string
	Author      string
	AuthorImage string
}

// DefaultPostDefaults returns the built-in fallbacks.
func DefaultPostDefaults() Defaults {
	return Defaults{
		Category:    DefaultCategory,
		CoverImage:  DefaultCoverImage,
		Author:      DefaultAuthor,
		AuthorImage: DefaultAuthorImage,
	}
}

// merged returns d with empty fields taken from fallback.
func (d Defaults) merged(fallback Defaults) Defaults {
	if d.Category == "" {
		d.Category = fallback.Category
	}
	if d.CoverImage == "" {
		d.CoverImage = fallback.CoverImage
	}
	if d.Author == "" {
		d.Author = fallback.Author
	}
	if d.AuthorImage == "" {
		d.AuthorImage = fallback.AuthorImage
	}
	return d
}

// ReadingOptions tunes the reading-time estimate; zero fields use defaults
// (225 words per minute, 15 s per code block and image, 1 minute minimum).
type ReadingOptions = derive.ReadingOptions

// newPost assembles the listing form of a post from its parsed parts.
func newPost(id string, fm frontmatter.FrontMatter, excerpt string, minutes int, d Defaults) Post {
	p := Post{
		ID:           id,
		Title:        fm.Title,
		Date:         fm.Date,
		LastUpdated:  fm.LastUpdated,
		Excerpt:      excerpt,
		ReadingTime:  minutes,
		Tags:         append([]string{}, fm.Tags...),
		Category:     fm.Category,
		CoverImage:   fm.CoverImage,
		Author:       fm.Author,
		AuthorImage:  fm.AuthorImage,
		RelatedPosts: append([]string{}, fm.RelatedPosts...),
	}
	if p.LastUpdated == "" {
		p.LastUpdated = p.Date
	}
	if p.Category == "" {
		p.Category = d.Category
	}
	if p.CoverImage == "" {
		p.CoverImage = d.CoverImage
	}
	if p.Author == "" {
		p.Author = d.Author
	}
	if p.AuthorImage == "" {
		p.AuthorImage = d.AuthorImage
	}
	return p
}
