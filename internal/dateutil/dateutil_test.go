package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "iso tokens", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "short forms", format: "D MMM YY", want: "2 Jan 06"},
		{name: "bracket literal", format: "[Posted] DD/MM", want: "Posted 02/01"},
		{name: "preset name", format: "long", want: "January 2, 2006"},
		{name: "preset case insensitive", format: "US", want: "01/02/2006"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("Y", MaxDateFormatLength+1), wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[oops YYYY", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParsePostDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{value: "2024-03-09", want: want},
		{value: " 2024-03-09 ", want: want},
		{value: "2024/03/09", want: want},
		{value: "March 9, 2024", want: want},
		{value: "Mar 9, 2024", want: want},
		{value: "9 March 2024", want: want},
		{value: "2024-03-09 14:30", want: want.Add(14*time.Hour + 30*time.Minute)},
		{value: "2024-03-09T14:30:00Z", want: want.Add(14*time.Hour + 30*time.Minute)},
		{value: "someday", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePostDate(tt.value)
		if tt.wantErr {
			if !errors.Is(err, ErrUnrecognizedDate) {
				t.Errorf("ParsePostDate(%q) error = %v, want ErrUnrecognizedDate", tt.value, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePostDate(%q) unexpected error: %v", tt.value, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParsePostDate(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestComparePostDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"earlier", "2024-01-01", "2024-02-01", -1},
		{"later across formats", "March 1, 2024", "2024-02-28", 1},
		{"equal across formats", "2024-01-05", "January 5, 2024", 0},
		{"parseable after unparseable", "2020-01-01", "draft", 1},
		{"unparseable before parseable", "draft", "2020-01-01", -1},
		{"both unparseable compare as strings", "b-side", "a-side", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComparePostDates(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("ComparePostDates(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestFormatPostDate(t *testing.T) {
	t.Parallel()

	got, err := FormatPostDate("2024-03-09", "long")
	if err != nil || got != "March 9, 2024" {
		t.Errorf("FormatPostDate() = %q, %v", got, err)
	}

	got, err = FormatPostDate("whenever", "iso")
	if err != nil || got != "whenever" {
		t.Errorf("unparseable date: FormatPostDate() = %q, %v, want passthrough", got, err)
	}

	if _, err := FormatPostDate("2024-03-09", "[bad"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("bad format error = %v, want ErrInvalidDateFormat", err)
	}
}
