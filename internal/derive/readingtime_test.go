package derive

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

// ---------------------------------------------------------------------------
// TestReadingTime - Base time plus bonuses, ceiling, floor
// ---------------------------------------------------------------------------

func TestReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		opts ReadingOptions
		want int
	}{
		{
			// 448 prose words + the two fence lines = 450 tokens.
			name: "one code block and 450 words",
			body: words(446) + "\n\n```\n" + words(2) + "\n```\n",
			want: 3,
		},
		{
			name: "exactly two minutes",
			body: words(450),
			want: 2,
		},
		{
			name: "just over one minute rounds up",
			body: words(226),
			want: 2,
		},
		{
			name: "images add time",
			body: words(225) + " ![a](1.png) ![b](2.png) ![c](3.png) ![d](4.png)",
			want: 3,
		},
		{
			name: "empty body returns minimum",
			body: "",
			want: 1,
		},
		{
			name: "whitespace body returns configured minimum",
			body: " \n\t ",
			opts: ReadingOptions{MinMinutes: 4},
			want: 4,
		},
		{
			name: "floor applies to short bodies",
			body: "tiny",
			opts: ReadingOptions{MinMinutes: 2},
			want: 2,
		},
		{
			name: "custom words per minute",
			body: words(300),
			opts: ReadingOptions{WordsPerMinute: 100},
			want: 3,
		},
		{
			name: "negative bonus disables code time",
			body: words(225) + "\n```\n```\n",
			opts: ReadingOptions{CodeBlockSeconds: -1},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ReadingTime(tt.body, tt.opts); got != tt.want {
				t.Errorf("ReadingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateReading_Counts(t *testing.T) {
	t.Parallel()

	body := "intro ![img](a.png) [link](b)\n```\ncode\n```\n```\nunterminated"
	est := EstimateReading(body, ReadingOptions{})

	if est.CodeBlocks != 1 {
		t.Errorf("CodeBlocks = %d, want 1", est.CodeBlocks)
	}
	if est.Images != 1 {
		t.Errorf("Images = %d, want 1", est.Images)
	}
	if !est.UnpairedFence {
		t.Error("UnpairedFence = false, want true for three markers")
	}
}

func TestReadingTime_Properties(t *testing.T) {
	t.Parallel()

	prev := 0
	for n := 0; n <= 2000; n += 37 {
		got := ReadingTime(words(n)+"\n```\nx\n```\n![i](p)", ReadingOptions{})
		if got < DefaultMinMinutes {
			t.Fatalf("%d words: %d below minimum", n, got)
		}
		if got < prev {
			t.Fatalf("%d words: %d decreased from %d", n, got, prev)
		}
		prev = got
	}
}
