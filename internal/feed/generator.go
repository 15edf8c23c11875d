// Package feed renders the post listing as an RSS 2.0 document.
package feed

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/dateutil"
)

// ContentType is the media type served for the feed.
const ContentType = "application/rss+xml; charset=utf-8"

// Channel describes the feed itself.
type Channel struct {
	Title       string
	Link        string // Site root; item links are Link + "/blog/" + id
	Description string
	Language    string
	SelfURL     string // Where the feed is served, for atom:link
}

// Generator writes RSS documents.
type Generator struct {
	Version string
	now     func() time.Time
}

func NewGenerator(version string) *Generator {
	return &Generator{Version: version, now: time.Now}
}

// PostLink returns the public URL of a post.
func PostLink(siteURL, id string) string {
	return strings.TrimRight(siteURL, "/") + "/blog/" + id
}

// Run renders posts, newest first as given, into a complete RSS document.
func (g *Generator) Run(ch Channel, posts []portfolio.Post) (string, error) {
	if ch.Title == "" {
		return "", fmt.Errorf("feed: channel title is required")
	}

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", ch.Title, 4)
	g.writeElement(&buf, "link", ch.Link, 4)
	g.writeElement(&buf, "description", cmp.Or(ch.Description, ch.Title), 4)

	if ch.SelfURL != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(ch.SelfURL)))
	}

	lastBuildDate := g.now().UTC()
	if len(posts) > 0 {
		if t, err := dateutil.ParsePostDate(posts[0].Date); err == nil {
			lastBuildDate = t
		}
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", "portfolio/"+cmp.Or(g.Version, "dev"), 4)
	g.writeElement(&buf, "language", ch.Language, 4)

	for _, p := range posts {
		g.writeItem(&buf, ch, p)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, ch Channel, p portfolio.Post) {
	buf.WriteString("    <item>\n")

	link := ""
	if ch.Link != "" {
		link = PostLink(ch.Link, p.ID)
	}
	guid := cmp.Or(link, p.ID)
	buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", isURL(guid)))
	_ = xml.EscapeText(buf, []byte(guid))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", p.Title, 6)
	g.writeElement(buf, "link", link, 6)
	g.writeElement(buf, "description", p.Excerpt, 6)

	if p.ContentHTML != "" {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(strings.ReplaceAll(p.ContentHTML, "]]>", "]]]]><![CDATA[>"))
		buf.WriteString("]]></content:encoded>\n")
	}

	if t, err := dateutil.ParsePostDate(p.Date); err == nil {
		g.writeElement(buf, "pubDate", t.Format(time.RFC1123Z), 6)
	}

	g.writeElement(buf, "author", p.Author, 6)

	seen := make(map[string]bool, len(p.Tags)+1)
	for _, category := range append([]string{p.Category}, p.Tags...) {
		key := strings.ToLower(category)
		if category == "" || seen[key] {
			continue
		}
		seen[key] = true
		g.writeElement(buf, "category", category, 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for range indent {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	_ = xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
