package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/example/go-bib-tts/internal/text"
	"github.com/spf13/cobra"
)

func newChunksCmd() *cobra.Command {
	var input string
	var maxChars int

	cmd := &cobra.Command{
		Use:   "chunks",
		Short: "Show how text splits into synthesis chunks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readChunksText(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runChunksCommand(body, maxChars, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to split (if empty, read from stdin)")
	cmd.Flags().IntVar(&maxChars, "max-chars", text.MaxChunkChars, "Maximum characters per chunk")

	return cmd
}

func runChunksCommand(body string, maxChars int, stdout io.Writer) error {
	chunks := text.Tokenize(body, maxChars)
	for _, chunk := range chunks {
		_, _ = fmt.Fprintf(stdout, "%3d  %s\n", utf8.RuneCountInString(chunk), chunk)
	}
	_, _ = fmt.Fprintf(stdout, "%d chunk(s)\n", len(chunks))

	return nil
}

func readChunksText(input string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(input) != "" {
		return input, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	body := strings.TrimSpace(string(b))
	if body == "" {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return body, nil
}
