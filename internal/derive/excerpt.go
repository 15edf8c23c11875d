package derive

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultExcerptLength is the maximum excerpt length in characters.
const DefaultExcerptLength = 240

// Ellipsis marks a truncated excerpt.
const Ellipsis = "..."

// Cleaning patterns, applied in declaration order by cleanOnce.
var (
	metadataBlock  = regexp.MustCompile(`\A---\n(?s:.*?)\n---(?:\n|\z)`)
	headingMarker  = regexp.MustCompile(`(?m)^[ \t]*(?:#{1,6}[ \t]+)+`)
	emptyHeading   = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]*$`)
	horizontalRule = regexp.MustCompile(`(?m)^[ \t]*(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	linkOrImage    = regexp.MustCompile(`!?\[[^\]]*\]\((?:[^()\n]|\([^()\n]*\))*\)`)
	fencedCode     = regexp.MustCompile("(?s)```.*?```")
	inlineCode     = regexp.MustCompile("`[^`\n]*`")
	boldStars      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnders     = regexp.MustCompile(`\b__([^_]+)__\b`)
	italicStars    = regexp.MustCompile(`(^|[^\w*])\*([^*\s](?:[^*]*[^*\s])?)\*($|[^\w*])`)
	italicUnders   = regexp.MustCompile(`\b_([^_]+)_\b`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Excerpt returns override verbatim when it is non-empty. Otherwise it cleans
// body to plain text and truncates it to maxLen characters, appending Ellipsis
// only when something was cut. A maxLen of zero or less means
// DefaultExcerptLength.
func Excerpt(body, override string, maxLen int) string {
	if override != "" {
		return override
	}
	if maxLen <= 0 {
		maxLen = DefaultExcerptLength
	}
	return truncate(Clean(body), maxLen)
}

// Clean strips markdown syntax from body and collapses whitespace. The result
// is a fixed point: Clean(Clean(s)) == Clean(s).
func Clean(body string) string {
	s := body
	for {
		next := cleanOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func cleanOnce(s string) string {
	s = metadataBlock.ReplaceAllString(s, "")
	s = headingMarker.ReplaceAllString(s, "")
	s = emptyHeading.ReplaceAllString(s, "")
	s = horizontalRule.ReplaceAllString(s, "")
	s = linkOrImage.ReplaceAllString(s, "")
	s = fencedCode.ReplaceAllString(s, "")
	s = inlineCode.ReplaceAllString(s, "")
	s = boldStars.ReplaceAllString(s, "$1")
	s = boldUnders.ReplaceAllString(s, "$1")
	s = italicStars.ReplaceAllString(s, "${1}${2}${3}")
	s = italicUnders.ReplaceAllString(s, "$1")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:maxLen]), " ") + Ellipsis
}
