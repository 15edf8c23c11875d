package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAssetPathPass - Relative asset resolution
// ---------------------------------------------------------------------------

func TestAssetPathPass(t *testing.T) {
	t.Parallel()

	const base = "https://cdn.example.com/posts/hello"

	tests := []struct {
		name         string
		html         string
		baseURL      string
		wantContains []string
	}{
		{
			name:         "relative image with dot slash",
			html:         `<img src="./images/logo.png">`,
			baseURL:      base,
			wantContains: []string{`src="https://cdn.example.com/posts/hello/images/logo.png"`},
		},
		{
			name:         "relative image without dot slash",
			html:         `<img src="images/logo.png">`,
			baseURL:      base + "/",
			wantContains: []string{`src="https://cdn.example.com/posts/hello/images/logo.png"`},
		},
		{
			name:         "root relative path unchanged",
			html:         `<img src="/images/logo.png">`,
			baseURL:      base,
			wantContains: []string{`src="/images/logo.png"`},
		},
		{
			name:         "absolute URL unchanged",
			html:         `<img src="https://example.com/logo.png">`,
			baseURL:      base,
			wantContains: []string{`src="https://example.com/logo.png"`},
		},
		{
			name:         "protocol relative unchanged",
			html:         `<img src="//cdn.other.com/logo.png">`,
			baseURL:      base,
			wantContains: []string{`src="//cdn.other.com/logo.png"`},
		},
		{
			name:         "data URI unchanged",
			html:         `<img src="data:image/png;base64,ABC123">`,
			baseURL:      base,
			wantContains: []string{`src="data:image/png;base64,ABC123"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:me@example.com">mail</a>`,
			baseURL:      base,
			wantContains: []string{`href="mailto:me@example.com"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#setup">jump</a>`,
			baseURL:      base,
			wantContains: []string{`href="#setup"`},
		},
		{
			name:         "relative link rewritten",
			html:         `<a href="files/slides.pdf">slides</a>`,
			baseURL:      base,
			wantContains: []string{`href="https://cdn.example.com/posts/hello/files/slides.pdf"`},
		},
		{
			name:         "picture source rewritten",
			html:         `<picture><source src="hero.webp"></picture>`,
			baseURL:      base,
			wantContains: []string{`src="https://cdn.example.com/posts/hello/hero.webp"`},
		},
		{
			name:         "script src untouched",
			html:         `<script src="./script.js"></script>`,
			baseURL:      base,
			wantContains: []string{`src="./script.js"`},
		},
		{
			name:         "empty base leaves paths",
			html:         `<img src="./logo.png">`,
			baseURL:      "",
			wantContains: []string{`src="./logo.png"`},
		},
		{
			name:         "attributes preserved",
			html:         `<img src="logo.png" alt="Logo" width="100">`,
			baseURL:      base,
			wantContains: []string{`alt="Logo"`, `width="100"`, `hello/logo.png"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Process(tt.html, &AssetPathPass{BaseURL: tt.baseURL})
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Process() = %q, want to contain %q", got, want)
				}
			}
		})
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"", false},
		{"#anchor", false},
		{"/root.png", false},
		{"?page=2", false},
		{"https://x.dev/a.png", false},
		{"tel:+100", false},
		{"img/a.png", true},
		{"./a.png", true},
		{"../shared/a.png", true},
	}

	for _, tt := range tests {
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
