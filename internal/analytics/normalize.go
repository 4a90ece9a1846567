package analytics

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var comparisonStrip = regexp.MustCompile(`[^a-z0-9\s._-]+`)

var diacriticRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanString trims a raw value and reports whether anything remains.
func CleanString(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	return trimmed, trimmed != ""
}

func cleanPtr(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return CleanString(*value)
}

// FoldDiacritics removes combining marks via NFD decomposition, so
// "Córdoba" folds to "Cordoba".
func FoldDiacritics(value string) string {
	folded, _, err := transform.String(diacriticRemover, value)
	if err != nil {
		return value
	}
	return folded
}

// ComparisonKey derives the locale-insensitive equality key used by every
// filter match and bucket: lower case, diacritics stripped, anything
// outside [a-z0-9\s._-] removed, trimmed. Empty means the value carries no
// comparable content.
func ComparisonKey(value string) string {
	trimmed, ok := CleanString(value)
	if !ok {
		return ""
	}
	folded := FoldDiacritics(strings.ToLower(trimmed))
	return strings.TrimSpace(comparisonStrip.ReplaceAllString(folded, ""))
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate reads a submission timestamp or filter bound. Unparseable
// input means "no date": the caller excludes the value from date-ranged
// computations instead of failing the run.
func ParseDate(value string) (time.Time, bool) {
	trimmed, ok := CleanString(value)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
