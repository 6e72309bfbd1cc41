package preprocess

import "regexp"

var (
	mdBold      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic    = regexp.MustCompile(`\*([^*]+)\*`)
	mdStrike    = regexp.MustCompile(`~~([^~]+)~~`)
	mdCode      = regexp.MustCompile("`([^`]+)`")
	mdHeading   = regexp.MustCompile(`(?m)^#+\s+`)
	mdLink      = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// RemoveMarkdown strips flat markdown formatting: bold, italic,
// strikethrough, inline code, heading markers, and links (the link text
// survives, the target is discarded). Each rule is a single substitution
// pass over the output of the previous rule; bold runs before italic so
// single-asterisk spans are all that remain for the italic rule.
// Malformed markdown is not repaired, it falls through the rules as-is.
func RemoveMarkdown(text string) string {
	text = mdBold.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = mdStrike.ReplaceAllString(text, "$1")
	text = mdCode.ReplaceAllString(text, "$1")
	text = mdHeading.ReplaceAllString(text, "")
	return mdLink.ReplaceAllString(text, "$1")
}
