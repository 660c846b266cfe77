// Package validate checks uploaded file names against an extension allow-list
// and normalizes them into names that are safe to use as a single path segment.
package validate

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultExtensions is the allow-list used when none is configured
var DefaultExtensions = []string{"txt", "pdf", "png", "jpg", "jpeg", "gif", "csv", "xlsx", "doc", "docx"}

// AllowList is a set of lower-cased extensions without the leading dot
type AllowList map[string]struct{}

// NewAllowList builds an AllowList, ignoring case, surrounding spaces and leading dots
func NewAllowList(exts ...string) AllowList {
	list := make(AllowList, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		list[ext] = struct{}{}
	}
	return list
}

// Contains reports whether ext is allowed. The comparison is case-insensitive.
func (a AllowList) Contains(ext string) bool {
	_, ok := a[strings.ToLower(ext)]
	return ok
}

// Extensions returns the allowed extensions in sorted order
func (a AllowList) Extensions() []string {
	exts := make([]string, 0, len(a))
	for ext := range a {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extension returns the substring after the final dot
func Extension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return "", false
	}
	return filename[idx+1:], true
}

// PlaceholderStem replaces a stem that normalizes to nothing, as in "报告.pdf" or ".pdf"
const PlaceholderStem = "file"

// Validate reports whether filename carries an allowed extension and returns its normalized form.
func Validate(filename string, allowed AllowList) (string, bool) {
	ext, ok := Extension(filename)
	if !ok || !allowed.Contains(ext) {
		return "", false
	}

	normalized := Normalize(filename)
	normalizedExt, ok := Extension(normalized)
	if !ok || !allowed.Contains(normalizedExt) {
		return "", false
	}
	return normalized, true
}

// Normalize turns filename into a single filesystem-safe path segment.
// The stem and the extension after the final dot are cleaned separately:
// separators and whitespace runs become underscores, other characters outside
// [A-Za-z0-9._-] are dropped, and leading or trailing dots and underscores are trimmed.
// A stem left empty becomes PlaceholderStem so the extension survives.
// Normalize is idempotent.
func Normalize(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return normalizeSegment(filename)
	}

	stem := normalizeSegment(filename[:idx])
	ext := normalizeSegment(filename[idx+1:])
	if ext == "" {
		return stem
	}
	if stem == "" {
		stem = PlaceholderStem
	}
	return stem + "." + ext
}

func normalizeSegment(s string) string {
	joined := strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "_")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		switch {
		case r == '/' || r == '\\':
			b.WriteRune('_')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._")
}
