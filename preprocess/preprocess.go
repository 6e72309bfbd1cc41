// Package preprocess cleans natural-language text for speech synthesis.
//
// A speech synthesizer will read emoji, markdown markers, and stray
// delimiters out loud, or stumble over them. This package provides five
// independent text filters — emoji removal, markdown stripping,
// bracket/quote stripping, lexical replacement, and pause normalization
// — plus Preprocess, which composes them into one fixed-order pipeline.
// Every filter is a pure string→string function, total over all Unicode
// input and safe for concurrent use.
package preprocess

import "log/slog"

// previewLen caps the before/after excerpts in the change diagnostic.
const previewLen = 50

type options struct {
	emoji          bool
	markdown       bool
	bracketsQuotes bool
	pauses         bool
	replacements   *Replacements
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		emoji:          true,
		markdown:       true,
		bracketsQuotes: true,
		pauses:         true,
		logger:         slog.Default(),
	}
}

// Option configures the Preprocess pipeline.
type Option func(*options)

// WithoutEmoji skips the emoji-removal stage.
func WithoutEmoji() Option {
	return func(o *options) { o.emoji = false }
}

// WithoutMarkdown skips the markdown-stripping stage.
func WithoutMarkdown() Option {
	return func(o *options) { o.markdown = false }
}

// WithoutBracketsQuotes skips the bracket/quote-stripping stage.
func WithoutBracketsQuotes() Option {
	return func(o *options) { o.bracketsQuotes = false }
}

// WithoutPauseNormalization skips the pause/whitespace stage.
func WithoutPauseNormalization() Option {
	return func(o *options) { o.pauses = false }
}

// WithReplacements enables the lexical-replacement stage with the given
// mapping. A nil or empty mapping leaves the stage disabled.
func WithReplacements(m *Replacements) Option {
	return func(o *options) { o.replacements = m }
}

// WithLogger sets the slog.Logger that receives the change diagnostic.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Preprocess runs the enabled filters over text in fixed order:
// emoji removal, markdown stripping, bracket/quote stripping, lexical
// replacement, pause normalization. All boolean stages default to on;
// the replacement stage runs only when WithReplacements supplies a
// non-empty mapping. Disabled stages are skipped, never reordered.
//
// When the output differs from the input, a debug record with truncated
// before/after previews is logged. The diagnostic is advisory only and
// never affects the returned text.
func Preprocess(text string, optFns ...Option) string {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	original := text

	if opts.emoji {
		text = RemoveEmojis(text)
	}

	if opts.markdown {
		text = RemoveMarkdown(text)
	}

	if opts.bracketsQuotes {
		text = RemoveBracketsAndQuotes(text)
	}

	if opts.replacements != nil && opts.replacements.Len() > 0 {
		text = ApplyReplacements(text, opts.replacements)
	}

	if opts.pauses {
		text = NormalizePauses(text)
	}

	if text != original && opts.logger != nil {
		opts.logger.Debug("text preprocessed for TTS",
			slog.String("before", preview(original)),
			slog.String("after", preview(text)),
		)
	}

	return text
}

// preview returns the first previewLen characters of s, with an
// ellipsis suffix when truncated.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLen {
		return s
	}
	return string(runes[:previewLen]) + "..."
}
