// Package slug turns heading text into URL-safe anchor identifiers.
//
// A single Slugger is shared by every pass that names headings in one
// document (goldmark's auto heading IDs, the table of contents and the HTML
// heading-ID pass), so a link to "#setup-1" always finds its heading.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback names a heading whose text has no usable characters.
const Fallback = "heading"

var _ parser.IDs = (*Slugger)(nil)

// Inline markdown that should contribute only its label to a slug.
var (
	mdImageOrLink = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
)

// Make returns the base slug for text: diacritics folded, lowercased, letters,
// digits and underscores kept, whitespace and hyphen runs collapsed to a
// single hyphen, everything else dropped. It does not disambiguate.
func Make(text string) string {
	folded, _, err := transform.String(foldMarks(), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}
	return b.String()
}

// foldMarks is built per call; transform.Transformer values carry state.
func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// FromMarkdown reduces one line of inline markdown to the text a reader sees
// before slugging it: link and image targets and raw HTML tags are dropped.
func FromMarkdown(line string) string {
	line = mdImageOrLink.ReplaceAllString(line, "$1")
	line = htmlTag.ReplaceAllString(line, "")
	return Make(line)
}

// Slugger hands out identifiers that are unique within one document.
// Duplicates get "-1", "-2", ... appended to the base slug. Not safe for
// concurrent use; create one per document.
type Slugger struct {
	taken  map[string]bool
	counts map[string]int
}

// New returns an empty Slugger.
func New() *Slugger {
	return &Slugger{taken: make(map[string]bool), counts: make(map[string]int)}
}

// Slug returns a unique identifier for heading text.
func (s *Slugger) Slug(text string) string {
	return s.unique(Make(text))
}

// Reserve marks id as used so later Slug calls will not return it.
// It reports false when id was already taken.
func (s *Slugger) Reserve(id string) bool {
	if s.taken[id] {
		return false
	}
	s.taken[id] = true
	return true
}

// Unique returns id unchanged when it is free, otherwise id with the next
// free counter suffix. The result is marked taken. id is not re-slugged.
func (s *Slugger) Unique(id string) string {
	return s.unique(id)
}

func (s *Slugger) unique(base string) string {
	if base == "" {
		base = Fallback
	}
	id := base
	for s.taken[id] {
		s.counts[base]++
		id = base + "-" + strconv.Itoa(s.counts[base])
	}
	s.taken[id] = true
	return id
}

// Generate implements parser.IDs. goldmark passes the raw markdown of the
// heading line.
func (s *Slugger) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(s.unique(FromMarkdown(string(value))))
}

// Put implements parser.IDs; goldmark calls it for explicit {#id} attributes.
func (s *Slugger) Put(value []byte) {
	s.Reserve(string(value))
}
