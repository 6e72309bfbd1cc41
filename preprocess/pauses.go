package preprocess

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizePauses rewrites run-on ellipses ("...") as commas, collapses
// every whitespace run to a single space, and trims the result. The
// ellipsis rewrite must run before the collapse so the spaces around a
// former "..." merge into one.
func NormalizePauses(text string) string {
	text = strings.ReplaceAll(text, "...", ",")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
