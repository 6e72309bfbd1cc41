package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/go-tts-preprocess/preprocess"
)

// ErrEmptyInput is returned when no text arrives via argument, file, or stdin.
var ErrEmptyInput = errors.New("input text is empty")

func newCleanCmd() *cobra.Command {
	var text string
	var file string

	cmd := &cobra.Command{
		Use:   "clean [text]",
		Short: "Clean text and print the TTS-ready result",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readCleanInput(args, text, file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cleaned := preprocess.Preprocess(input, activeCfg.PipelineOptions()...)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cleaned)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to clean (alternative to positional args)")
	cmd.Flags().StringVar(&file, "file", "", "Read text from a file ('-' for stdin)")

	return cmd
}

// readCleanInput resolves the input text from, in order of preference,
// positional args, --text, --file, and finally stdin. Line endings are
// normalized to LF before the pipeline runs.
func readCleanInput(args []string, text, file string, stdin io.Reader) (string, error) {
	var input string

	switch {
	case len(args) > 0:
		input = strings.Join(args, " ")
	case strings.TrimSpace(text) != "":
		input = text
	case file != "" && file != "-":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		input = string(b)
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		input = string(b)
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}

	return input, nil
}
