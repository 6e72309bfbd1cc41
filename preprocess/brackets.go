package preprocess

import "regexp"

var (
	bracketChars = regexp.MustCompile(`[()\[\]{}<>]`)
	quoteChars   = regexp.MustCompile("[\"“”'‘’`«»]")
)

// RemoveBracketsAndQuotes deletes bracket and quotation characters,
// keeping the text they enclose. Covered: parentheses, square brackets,
// curly braces, angle brackets, ASCII and typographic double and single
// quotes, backticks, and guillemets. The filter is a plain character
// class, not pair-aware: unbalanced delimiters are deleted all the same.
func RemoveBracketsAndQuotes(text string) string {
	text = bracketChars.ReplaceAllString(text, "")
	return quoteChars.ReplaceAllString(text, "")
}
