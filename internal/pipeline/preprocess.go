package pipeline

import (
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor prepares a body for conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// CommonMarkPreprocessor normalises input that goldmark would otherwise
// treat inconsistently across platforms.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown strips a byte order mark and converts line endings to \n.
// Content inside code blocks is otherwise left untouched.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(content string) string {
	content = strings.TrimPrefix(content, "\uFEFF")
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
