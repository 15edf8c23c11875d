package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := New("warn", FormatText, &buf)

	lg.Debugf("debug %s", "hidden")
	lg.Infof("info %s", "hidden")
	lg.Warnf("skipping %s", "draft.md")

	out := buf.String()
	if !strings.Contains(out, "skipping draft.md") {
		t.Errorf("output missing warning, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains records below threshold: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := New("info", FormatJSON, &buf)
	lg.Errorf("content directory unreadable")

	out := buf.String()
	for _, want := range []string{`"msg":"content directory unreadable"`, `"level":`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s, got %q", want, out)
		}
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  bool
	}{
		{"empty uses default", "", true},
		{"lowercase", "debug", true},
		{"uppercase", "WARN", true},
		{"unknown", "verbose", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidLevel(tt.level); got != tt.want {
				t.Errorf("ValidLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestRecorder_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var r Recorder
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Warnf("post %d", i)
		}()
	}
	wg.Wait()
	r.Errorf("boom")

	if got := r.Count("warn"); got != 20 {
		t.Errorf("Count(warn) = %d, want 20", got)
	}
	if got := r.Count("error"); got != 1 {
		t.Errorf("Count(error) = %d, want 1", got)
	}
}
