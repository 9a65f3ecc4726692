package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds curve, track and example names.
const maxNameLength = 128

// ValidateName validates a curve or track name.
//
// Names end up in SVG text, JSON documents and cache keys, so the rules are
// conservative:
//   - No empty or whitespace-only names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeUnknownTrackSpec, "track name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeUnknownTrackSpec, "track name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeUnknownTrackSpec, "track name contains invalid control characters")
		}
	}

	return nil
}

// ValidateFilename validates an output filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..) after cleaning
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return New(ErrCodeInvalidPath, "path cannot escape the working directory (..)")
	}

	return nil
}
