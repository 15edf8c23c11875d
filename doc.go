// Package portfolio turns a directory of markdown blog posts into
// render-ready post records.
//
// # Quick Start
//
//	repo := portfolio.Open("content/posts")
//
//	for _, p := range repo.ListPosts() {
//	    fmt.Println(p.Date, p.Title, p.ReadingTime)
//	}
//
//	post, err := repo.GetPost("hello-world")
//	if errors.Is(err, portfolio.ErrNotFound) {
//	    // render a 404 page
//	}
//	fmt.Println(post.ContentHTML)
//
// # Content Files
//
// Each post is a file named <id>.md directly inside the content directory.
// It may start with a YAML front-matter block:
//
//	---
//	title: Hello World
//	date: 2024-01-31
//	tags: [go, web]
//	excerpt: Optional hand-written summary.
//	---
//	# Hello
//
// title and date are required; every other key has a default (see Defaults).
//
// # Listing versus Retrieval
//
// ListPosts never fails: files with missing required keys are skipped with a
// logged warning, and an unreadable directory yields an empty list and a
// logged error. Listings carry excerpts and reading times but no HTML.
//
// GetPost runs the full pipeline and surfaces every problem to the caller,
// so the same file that ListPosts quietly skips makes GetPost return
// ErrMissingRequiredField.
//
// Nothing is cached: every call reads the directory again, so edits show up
// on the next request.
//
// # Trusted Content Only
//
// Raw HTML embedded in markdown is passed through unescaped. The pipeline
// must never be fed content from untrusted authors.
package portfolio
