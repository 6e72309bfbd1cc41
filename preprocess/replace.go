package preprocess

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Replacements maps literal substrings to their spoken replacements.
// Iteration follows insertion order, which is the order the
// replacements are applied in.
type Replacements = orderedmap.OrderedMap[string, string]

// NewReplacements returns an empty replacement mapping.
func NewReplacements() *Replacements {
	return orderedmap.New[string, string]()
}

// ApplyReplacements performs literal substring replacement for every
// key in the mapping, in insertion order. Each key's replacement runs
// over the whole text before the next key is considered, so an earlier
// replacement's output is visible to later keys (cascading is
// intentional). Keys are matched literally, never as patterns. A nil or
// empty mapping returns the text unchanged.
func ApplyReplacements(text string, replacements *Replacements) string {
	if replacements == nil || replacements.Len() == 0 {
		return text
	}

	for pair := replacements.Oldest(); pair != nil; pair = pair.Next() {
		text = strings.ReplaceAll(text, pair.Key, pair.Value)
	}

	return text
}

// defaultReplacementTable backs DefaultReplacements. Kept as an ordered
// pair list so every call rebuilds the mapping in the same order.
var defaultReplacementTable = [...][2]string{
	// Pronunciation fixes.
	{"API", "A P I"},
	{"EUR", "Euro"},
	{"JPY", "Yen"},
	{"USD", "Dollar"},
	{"URL", "U R L"},
	{"PDF", "P D F"},
	{"CSV", "C S V"},

	// File extensions.
	{".md", " M D"},
	{".txt", " T X T"},
	{".json", " JSON"},

	// Tilde, often used as a cuteness marker.
	{"~", ""},

	// Common abbreviations.
	{"etc.", "et cetera"},
	{"e.g.", "for example"},
	{"i.e.", "that is"},
}

// DefaultReplacements returns the stock replacement table: acronym and
// currency spell-outs, file-extension spell-outs, tilde removal, and
// abbreviation expansions. Each call returns a fresh mapping, so a
// caller may extend its copy without affecting anyone else. The
// pipeline never applies this table on its own; pass it explicitly via
// WithReplacements or ApplyReplacements.
func DefaultReplacements() *Replacements {
	m := orderedmap.New[string, string](orderedmap.WithCapacity[string, string](len(defaultReplacementTable)))
	for _, entry := range defaultReplacementTable {
		m.Set(entry[0], entry[1])
	}
	return m
}
