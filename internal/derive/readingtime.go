package derive

import (
	"regexp"
	"strings"
)

// Reading-time defaults.
const (
	DefaultWordsPerMinute   = 225
	DefaultCodeBlockSeconds = 15
	DefaultImageSeconds     = 15
	DefaultMinMinutes       = 1
)

const fenceMarker = "```"

var imageSyntax = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)

// ReadingOptions tunes the reading-time estimate. Zero values select the
// defaults; negative bonuses are treated as zero.
type ReadingOptions struct {
	WordsPerMinute   int
	CodeBlockSeconds int
	ImageSeconds     int
	MinMinutes       int
}

func (o ReadingOptions) withDefaults() ReadingOptions {
	if o.WordsPerMinute <= 0 {
		o.WordsPerMinute = DefaultWordsPerMinute
	}
	if o.CodeBlockSeconds == 0 {
		o.CodeBlockSeconds = DefaultCodeBlockSeconds
	}
	if o.CodeBlockSeconds < 0 {
		o.CodeBlockSeconds = 0
	}
	if o.ImageSeconds == 0 {
		o.ImageSeconds = DefaultImageSeconds
	}
	if o.ImageSeconds < 0 {
		o.ImageSeconds = 0
	}
	if o.MinMinutes <= 0 {
		o.MinMinutes = DefaultMinMinutes
	}
	return o
}

// Estimate is a reading-time result with the counts that produced it.
type Estimate struct {
	Minutes    int
	Words      int
	CodeBlocks int
	Images     int
	// UnpairedFence is set when the body holds an odd number of ``` markers.
	// The unpaired marker adds no time.
	UnpairedFence bool
}

// ReadingTime returns the estimated minutes to read body.
func ReadingTime(body string, opts ReadingOptions) int {
	return EstimateReading(body, opts).Minutes
}

// EstimateReading computes
//
//	ceil(words/wpm + (codeBlocks*codeSeconds + images*imageSeconds)/60)
//
// floored at MinMinutes. An empty or whitespace-only body returns MinMinutes.
func EstimateReading(body string, opts ReadingOptions) Estimate {
	opts = opts.withDefaults()
	if strings.TrimSpace(body) == "" {
		return Estimate{Minutes: opts.MinMinutes}
	}

	fences := strings.Count(body, fenceMarker)
	est := Estimate{
		Words:         len(strings.Fields(body)),
		CodeBlocks:    fences / 2,
		Images:        len(imageSyntax.FindAllStringIndex(body, -1)),
		UnpairedFence: fences%2 == 1,
	}

	// Everything is scaled to seconds*wpm so the ceiling is exact:
	// minutes = (words*60 + bonusSeconds*wpm) / (60*wpm).
	bonus := est.CodeBlocks*opts.CodeBlockSeconds + est.Images*opts.ImageSeconds
	num := est.Words*60 + bonus*opts.WordsPerMinute
	den := 60 * opts.WordsPerMinute
	est.Minutes = (num + den - 1) / den

	if est.Minutes < opts.MinMinutes {
		est.Minutes = opts.MinMinutes
	}
	return est
}
