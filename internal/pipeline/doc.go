// Package pipeline turns a post's markdown body into render-ready HTML.
//
// Stages, in order:
//   - Markdown preprocessing (byte order mark, line endings)
//   - Markdown to HTML via goldmark (GFM, heading IDs, raw HTML pass-through)
//   - Table of contents, built by a second parse of the same body
//   - Tree passes over the parsed fragment: TOC insertion, heading IDs,
//     code-block wrapping, relative asset path rewriting
//
// All stages that name headings draw from one slug.Slugger per document, so
// anchors in the table of contents match the IDs in the body.
//
// Raw HTML in the markdown is emitted unescaped. Only run this pipeline on
// trusted, author-written content.
package pipeline
