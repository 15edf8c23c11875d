// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/theamazingmrb/portfolio-sub000/internal/fileutil"
)

// maxSuggestions caps the ids suggested for a missing post.
const maxSuggestions = 3

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForContentDir returns hints for a missing or unreadable content directory.
func ForContentDir() string {
	hints := []string{"use --content or set PORTFOLIO_CONTENT_DIR"}
	if os.Getenv("PORTFOLIO_CONTENT_DIR") != "" {
		hints[0] = "check that PORTFOLIO_CONTENT_DIR points at the posts directory"
	}
	if IsInContainer() {
		hints = append(hints, "mount the posts directory into the container")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/portfolio/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/portfolio") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPostNotFound suggests ids close to the one requested, or the ids
// command when nothing is close.
func ForPostNotFound(id string, available []string) string {
	want := strings.ToLower(id)
	var matches []string
	for _, candidate := range available {
		c := strings.ToLower(candidate)
		if strings.Contains(c, want) || strings.Contains(want, c) || sharedPrefix(c, want) >= 4 {
			matches = append(matches, candidate)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	if len(matches) == 0 {
		return format("run 'portfolio ids' to list available posts")
	}
	return format("did you mean " + strings.Join(matches, ", ") + "?")
}

// ForAddrInUse returns hints when the server cannot bind its address.
func ForAddrInUse() string {
	return format("choose another address with --addr or PORTFOLIO_ADDR")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForCodeTheme lists the available code themes.
func ForCodeTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingField explains which front-matter keys every post needs.
func ForMissingField() string {
	return format("every post needs 'title' and 'date' in its front matter")
}

func sharedPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
