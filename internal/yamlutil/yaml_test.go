package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/theamazingmrb/portfolio-sub000/internal/yamlutil"
)

type testMeta struct {
	Title string   `yaml:"title"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("title: test\ncount: 42\ntags: [a, b]"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				m := v.(*testMeta)
				if m.Title != "test" || m.Count != 42 || len(m.Tags) != 2 {
					t.Errorf("got %+v", m)
				}
			},
		},
		{
			name: "unknown keys ignored",
			data: []byte("title: test\nextra: true"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				if v.(*testMeta).Title != "test" {
					t.Errorf("Title = %q, want %q", v.(*testMeta).Title, "test")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.Unmarshal(data, &testMeta{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown keys
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	if err := yamlutil.UnmarshalStrict([]byte("title: ok"), &testMeta{}); err != nil {
		t.Errorf("known keys: unexpected error %v", err)
	}
	if err := yamlutil.UnmarshalStrict([]byte("title: ok\nbogus: 1"), &testMeta{}); err == nil {
		t.Error("unknown key: expected error, got nil")
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalMapping - Front-matter blocks
// ---------------------------------------------------------------------------

func TestUnmarshalMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		wantErr   error
		wantAny   bool
		wantTitle string
	}{
		{name: "mapping", data: "title: Hello\n", wantTitle: "Hello"},
		{name: "blank block", data: "  \n\n"},
		{name: "explicit null", data: "~\n"},
		{name: "scalar", data: "just a sentence\n", wantErr: yamlutil.ErrNotMapping},
		{name: "sequence", data: "- a\n- b\n", wantErr: yamlutil.ErrNotMapping},
		{name: "broken syntax", data: "title: [unclosed\n", wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m testMeta
			err := yamlutil.UnmarshalMapping([]byte(tt.data), &m)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantAny:
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Title != tt.wantTitle {
					t.Errorf("Title = %q, want %q", m.Title, tt.wantTitle)
				}
			}
		})
	}
}
