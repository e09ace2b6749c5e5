package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeComment canonicalizes comment text for duplicate detection:
// lowercased, trimmed, inner whitespace collapsed to single spaces.
func NormalizeComment(text string) string {
	text = strings.ToLower(text)
	text = strings.TrimSpace(text)
	return whitespaceRegex.ReplaceAllString(text, " ")
}

// NormalizeHandle canonicalizes a creator handle: the leading @ is optional
// in collector dumps and handles are case-insensitive on the platform.
func NormalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	return strings.ToLower(handle)
}
