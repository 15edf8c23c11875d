package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/theamazingmrb/portfolio-sub000/internal/slug"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Fragment output and extensions
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "fragment not document",
			input:        "# Hello\n\nWorld",
			wantContains: []string{`<h1 id="hello">Hello</h1>`, "<p>World</p>"},
			wantExcludes: []string{"<html", "<body", "<!DOCTYPE"},
		},
		{
			name:         "table",
			input:        "| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "strikethrough",
			input:        "~~gone~~",
			wantContains: []string{"<del>gone</del>"},
		},
		{
			name:         "autolink",
			input:        "see https://example.com now",
			wantContains: []string{`<a href="https://example.com">https://example.com</a>`},
		},
		{
			name:         "task list",
			input:        "- [x] done\n- [ ] todo\n",
			wantContains: []string{`type="checkbox"`, "checked"},
		},
		{
			name:         "raw HTML passes through",
			input:        "<figure class=\"wide\"><img src=\"a.png\"></figure>\n\ntext",
			wantContains: []string{`<figure class="wide">`},
			wantExcludes: []string{"raw HTML omitted", "&lt;figure"},
		},
		{
			name:         "explicit heading id",
			input:        "## Install {#get-started}\n",
			wantContains: []string{`<h2 id="get-started">Install</h2>`},
		},
		{
			name:         "duplicate headings disambiguated",
			input:        "## Setup\n\n## Setup\n",
			wantContains: []string{`id="setup"`, `id="setup-1"`},
		},
		{
			name:         "code fence keeps language class",
			input:        "```go\nx := 1\n```\n",
			wantContains: []string{`<pre><code class="language-go">x := 1`},
		},
		{
			name:         "heading with link slugs label only",
			input:        "## Routing with [Gin](https://gin-gonic.com)\n",
			wantContains: []string{`id="routing-with-gin"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(tt.input, nil)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q in:\n%s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ToHTML() should not contain %q:\n%s", exclude, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_SharedSlugger(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ids := slug.New()

	if _, err := conv.ToHTML("## Intro\n", ids); err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if got := ids.Slug("Intro"); got != "intro-1" {
		t.Errorf("Slug(Intro) after conversion = %q, want %q", got, "intro-1")
	}
}

func TestGoldmarkConverter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	errs := make(chan error, 8)
	for range 8 {
		go func() {
			out, err := conv.ToHTML("## Setup\n\n## Setup\n", nil)
			if err == nil && !strings.Contains(out, `id="setup-1"`) {
				err = errors.New("missing setup-1 in " + out)
			}
			errs <- err
		}()
	}
	for range 8 {
		if err := <-errs; err != nil {
			t.Error(err)
		}
	}
}

func TestGoldmarkConverter_RepeatedExplicitID(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	body := "## Setup\n\n## Other {#setup}\n"

	got, err := conv.ToHTML(body, slug.New())
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, `<h2 id="setup-1">Other</h2>`) {
		t.Errorf("repeated explicit id not renamed:\n%s", got)
	}

	toc, err := conv.TableOfContents(body)
	if err != nil {
		t.Fatalf("TableOfContents() error = %v", err)
	}
	if !strings.Contains(toc, `href="#setup-1"`) {
		t.Errorf("TOC does not link the renamed id:\n%s", toc)
	}
}
