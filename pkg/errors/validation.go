package errors

import (
	"strings"
	"unicode"
)

const maxLanguageLength = 64

// ValidateLanguage validates a trending language identifier before it is
// embedded in a URL path.
//
// Identifiers are free-form ("go", "c++", "c#", "jupyter-notebook"), so
// only names that could escape the path segment are rejected:
//   - Empty names
//   - Control characters and null bytes
//   - Path separators and traversal sequences
//   - Names longer than 64 characters
func ValidateLanguage(lang string) error {
	if strings.TrimSpace(lang) == "" {
		return New(ErrCodeInvalidLanguage, "language cannot be empty")
	}

	if len(lang) > maxLanguageLength {
		return New(ErrCodeInvalidLanguage, "language too long (max %d characters)", maxLanguageLength)
	}

	for _, r := range lang {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLanguage, "language contains invalid control characters")
		}
	}

	if strings.ContainsAny(lang, "/\\") {
		return New(ErrCodeInvalidLanguage, "language cannot contain path separators: %q", lang)
	}
	if lang == "." || lang == ".." {
		return New(ErrCodeInvalidLanguage, "language cannot be a path traversal sequence: %q", lang)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}

	return nil
}
