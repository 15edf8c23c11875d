// Package frontmatter splits a content file into its metadata block and
// markdown body, and decodes the metadata into a FrontMatter record.
//
// Parsing fails soft: a file without a well-formed "---" block is returned as
// body only, and a block that is not a key-value mapping yields an empty
// record alongside ErrMalformed so the caller can log it and carry on.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/theamazingmrb/portfolio-sub000/internal/yamlutil"
)

// Delimiter opens and closes the metadata block.
const Delimiter = "---"

var (
	ErrMalformed            = errors.New("malformed front matter")
	ErrMissingRequiredField = errors.New("missing required front matter field")
)

// format recognises only the YAML "---" block; TOML and JSON front matter
// are treated as body text.
var format = frontmatter.NewFormat(Delimiter, Delimiter, yamlutil.UnmarshalMapping)

// FrontMatter holds the recognised metadata keys. Every field is optional at
// parse time; Validate enforces the required ones.
type FrontMatter struct {
	Title        string     `yaml:"title"`
	Date         string     `yaml:"date"`
	LastUpdated  string     `yaml:"lastUpdated"`
	Excerpt      string     `yaml:"excerpt"`
	Tags         StringList `yaml:"tags"`
	Category     string     `yaml:"category"`
	CoverImage   string     `yaml:"coverImage"`
	Author       string     `yaml:"author"`
	AuthorImage  string     `yaml:"authorImage"`
	RelatedPosts StringList `yaml:"relatedPosts"`
}

// Validate reports the first missing required key (title, then date).
func (fm FrontMatter) Validate() error {
	if strings.TrimSpace(fm.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingRequiredField)
	}
	if strings.TrimSpace(fm.Date) == "" {
		return fmt.Errorf("%w: date", ErrMissingRequiredField)
	}
	return nil
}

// Parse splits raw into front matter and body.
//
// Outcomes:
//   - no opening delimiter, or no closing delimiter: empty record, raw as body, nil error
//   - block present but not decodable as a mapping: empty record, raw as body, ErrMalformed
//   - otherwise: decoded record, text after the closing delimiter as body
//
// Line endings are normalised to "\n" and a leading byte order mark is dropped
// before splitting, in both the returned body and the fail-soft cases.
func Parse(raw string) (FrontMatter, string, error) {
	raw = normalize(raw)
	if !hasBlock(raw) {
		return FrontMatter{}, raw, nil
	}

	var fm FrontMatter
	rest, err := frontmatter.Parse(strings.NewReader(raw), &fm, format)
	if err != nil {
		return FrontMatter{}, raw, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fm, string(bytes.TrimLeft(rest, "\n")), nil
}

// hasBlock reports whether raw opens with a delimiter line and closes it later.
func hasBlock(raw string) bool {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 || strings.TrimRight(lines[0], " \t") != Delimiter {
		return false
	}
	for _, line := range lines[1:] {
		if strings.TrimRight(line, " \t") == Delimiter {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// StringList decodes either a YAML sequence or a comma-separated string.
type StringList []string

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (l *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	var out []string
	switch v := raw.(type) {
	case nil:
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	case []any:
		for _, item := range v {
			if item == nil {
				continue
			}
			s := strings.TrimSpace(fmt.Sprint(item))
			if s != "" {
				out = append(out, s)
			}
		}
	default:
		out = append(out, fmt.Sprint(v))
	}
	*l = out
	return nil
}
