package preprocess

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// emojiRanges covers the Unicode blocks treated as emoji: emoticons,
// symbols & pictographs, transport & map symbols, regional-indicator
// flags, dingbats, enclosed characters, supplemental symbols, chess
// symbols, and symbols & pictographs extended-A.
const emojiRanges = "\U0001F600-\U0001F64F" +
	"\U0001F300-\U0001F5FF" +
	"\U0001F680-\U0001F6FF" +
	"\U0001F1E0-\U0001F1FF" +
	"✂-➰" +
	"Ⓜ-\U0001F251" +
	"\U0001F900-\U0001F9FF" +
	"\U0001FA00-\U0001FA6F" +
	"\U0001FA70-\U0001FAFF"

var (
	// A run of emoji (plus trailing non-newline whitespace) sitting right
	// before a line break, where the character before the run is neither
	// sentence punctuation nor another emoji. The look-behind keeps the
	// match anchored to the start of the run; the look-ahead leaves the
	// line break in place.
	emojiSentenceEnd = regexp2.MustCompile(
		"(?<![.!?,;:"+emojiRanges+"])["+emojiRanges+"]+[^\\S\n]*(?=\n)",
		regexp2.None,
	)

	emojiRun = regexp.MustCompile("[" + emojiRanges + "]+")
)

// RemoveEmojis deletes emoji characters from text. When a run of emoji
// stands in for a sentence boundary — immediately before a line break,
// with no punctuation before the run — the run is replaced with a
// period so the synthesizer keeps its pause. All other emoji are
// removed without replacement.
//
// The period-insertion pass must run before the unconditional delete:
// deleting first would erase the position needed to decide whether a
// period belongs there.
func RemoveEmojis(text string) string {
	if replaced, err := emojiSentenceEnd.Replace(text, ".", -1, -1); err == nil {
		text = replaced
	}

	return emojiRun.ReplaceAllString(text, "")
}
