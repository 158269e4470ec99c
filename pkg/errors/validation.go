package errors

import (
	"strings"
	"unicode"
)

// ValidateAssetPath validates an image path from the lexicon or background
// manifest before it is resolved against the asset directory.
// It rejects paths that could escape the asset root.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - No parent-directory traversal
//   - No absolute paths
//   - Maximum length of 512 characters
func ValidateAssetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "asset path cannot be empty")
	}

	if len(path) > 512 {
		return New(ErrCodeInvalidPath, "asset path too long (max 512 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "asset path contains invalid control characters")
		}
	}

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return New(ErrCodeInvalidPath, "asset path must be relative to the asset directory")
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(path, pattern) {
			return New(ErrCodeInvalidPath, "asset path contains invalid sequence: %q", pattern)
		}
	}

	return nil
}

// ValidateLogName validates a usage-log name used as a storage key.
// It ensures the name is a simple identifier without path components.
func ValidateLogName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "log name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "log name cannot contain path separators")
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "log name cannot be a hidden file")
	}
	return nil
}
