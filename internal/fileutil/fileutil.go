// Package fileutil maps between post ids and content filenames and provides
// small filesystem helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContentExt is the extension of post files in the content directory.
const ContentExt = ".md"

// Sentinel errors for file utility operations.
var (
	ErrInvalidPostID = errors.New("invalid post id")
)

// PostID strips ContentExt from a content filename. It returns false for
// anything that is not a content file.
func PostID(name string) (string, bool) {
	id, ok := strings.CutSuffix(name, ContentExt)
	if !ok || ValidatePostID(id) != nil {
		return "", false
	}
	return id, true
}

// PostFilename returns the content filename for id.
func PostFilename(id string) string {
	return id + ContentExt
}

// ValidatePostID rejects ids that could not have come from a content file in
// the content directory itself: empty, hidden, or containing a path separator,
// "..", or a null byte.
func ValidatePostID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty", ErrInvalidPostID)
	case strings.HasPrefix(id, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidPostID, id)
	case strings.ContainsAny(id, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a path separator or null byte", ErrInvalidPostID, id)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "portfolio" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/portfolio/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFileAtomic writes data to a temporary file in path's directory and
// renames it over path, so readers never see a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
