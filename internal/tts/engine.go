package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/example/go-bib-tts/internal/audio"
)

const (
	FormatMP3 = "mp3"
	FormatWAV = "wav"
)

// DefaultExePath is the reference synthesis command. Any executable that
// reads text on stdin and writes audio to stdout can stand in for it.
const DefaultExePath = "gtts-cli"

const defaultLang = "en"

// NormalizeFormat validates a user-supplied audio format string. An empty
// value selects MP3.
func NormalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		format = FormatMP3
	}
	switch format {
	case FormatMP3, FormatWAV:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected %s|%s)", raw, FormatMP3, FormatWAV)
	}
}

// SplitFunc breaks text into pieces small enough for the synthesis command.
// A nil SplitFunc sends the whole text as a single chunk.
type SplitFunc func(text string) []string

// Engine drives an external text-to-speech command. Each chunk of input is
// piped to the command's stdin and its audio is collected from stdout.
type Engine struct {
	ExePath   string   // synthesis executable, DefaultExePath when empty
	Lang      string   // language code passed as --lang, "en" when empty
	Format    string   // FormatMP3 or FormatWAV, FormatMP3 when empty
	ExtraArgs []string // key=value pairs forwarded as --key=value
	Split     SplitFunc
	Stderr    io.Writer
}

type chunkOptions struct {
	ExePath   string
	Lang      string
	Text      string
	ExtraArgs []string
	Stderr    io.Writer
}

var runChunkSynthesis = synthesizeViaCLI

// Synthesize converts text into a single audio stream in the engine's
// format, invoking the CLI once per chunk and merging the results.
func (e *Engine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return nil, fmt.Errorf("empty input text")
	}

	format, err := NormalizeFormat(e.Format)
	if err != nil {
		return nil, err
	}

	chunks := []string{input}
	if e.Split != nil {
		chunks = chunks[:0]
		for _, c := range e.Split(input) {
			c = strings.TrimSpace(c)
			if c != "" {
				chunks = append(chunks, c)
			}
		}
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no non-empty chunks produced from input")
	}

	parts := make([][]byte, 0, len(chunks))
	for i, chunkText := range chunks {
		data, err := runChunkSynthesis(ctx, chunkOptions{
			ExePath:   e.ExePath,
			Lang:      e.Lang,
			Text:      chunkText,
			ExtraArgs: e.ExtraArgs,
			Stderr:    e.Stderr,
		})
		if err != nil {
			return nil, fmt.Errorf("chunk %d synthesis failed: %w", i+1, err)
		}
		parts = append(parts, data)
	}

	return mergeParts(parts, format)
}

// mergeParts joins per-chunk audio into one stream. MP3 frames are
// self-delimiting, so MP3 chunks concatenate byte-for-byte; WAV chunks
// must be decoded and re-encoded under a single header.
func mergeParts(parts [][]byte, format string) ([]byte, error) {
	if len(parts) == 1 {
		return parts[0], nil
	}
	if format == FormatWAV {
		merged, err := audio.ConcatWAV(parts)
		if err != nil {
			return nil, fmt.Errorf("merge wav chunks: %w", err)
		}
		return merged, nil
	}
	return bytes.Join(parts, nil), nil
}

func synthesizeViaCLI(ctx context.Context, opts chunkOptions) ([]byte, error) {
	exe := opts.ExePath
	if exe == "" {
		exe = DefaultExePath
	}
	if strings.TrimSpace(opts.Text) == "" {
		return nil, fmt.Errorf("empty chunk text")
	}

	lang := opts.Lang
	if lang == "" {
		lang = defaultLang
	}
	args := []string{"--lang", lang}

	extra, err := buildPassthroughArgs(opts.ExtraArgs)
	if err != nil {
		return nil, err
	}
	args = append(args, extra...)
	// The trailing "-" makes the command read its text from stdin.
	args = append(args, "-")

	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdin = strings.NewReader(opts.Text)
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("synthesis command produced no audio")
	}
	return out.Bytes(), nil
}

func buildPassthroughArgs(items []string) ([]string, error) {
	args := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid extra arg %q: expected key=value", item)
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("invalid extra arg %q: empty key", item)
		}
		if strings.HasPrefix(key, "--") {
			args = append(args, key+"="+val)
		} else if strings.HasPrefix(key, "-") {
			args = append(args, "-"+strings.TrimPrefix(key, "-")+"="+val)
		} else {
			args = append(args, "--"+key+"="+val)
		}
	}
	return args, nil
}
