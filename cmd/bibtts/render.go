package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/example/go-bib-tts/internal/bib"
	"github.com/example/go-bib-tts/internal/config"
	"github.com/example/go-bib-tts/internal/describe"
	"github.com/example/go-bib-tts/internal/export"
	"github.com/example/go-bib-tts/internal/text"
	"github.com/example/go-bib-tts/internal/tts"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <bibfile>",
		Short: "Convert bibliography records to narrated audio files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			opts.BibFile = args[0]
			opts.Stderr = os.Stderr
			return runRenderCommand(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&opts.Keys, "key", nil, "Render only the given record keys (repeatable)")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Audio format, mp3 or wav (overrides config)")
	cmd.Flags().StringVar(&opts.Lang, "lang", "", "Language code for synthesis (overrides config)")
	cmd.Flags().IntVar(&opts.MaxChunkChars, "max-chunk-chars", 0, "Maximum characters per synthesis chunk (overrides config)")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "Overwrite existing audio files")
	cmd.Flags().StringArrayVar(&opts.TTSArgs, "tts-arg", nil, "Pass-through TTS flag in key=value form (repeatable)")

	return cmd
}

type renderOptions struct {
	BibFile       string
	Keys          []string
	OutDir        string
	Format        string
	Lang          string
	MaxChunkChars int
	Overwrite     bool
	TTSArgs       []string
	Stderr        io.Writer
}

// renderSettings is the merge of loaded config and command-line overrides.
type renderSettings struct {
	ExePath     string
	OutDir      string
	Format      string
	Lang        string
	MaxChars    int
	ExtraArgs   []string
	Overwrite   bool
	AlbumArtist string
	Timeout     time.Duration
}

func resolveRenderSettings(cfg config.Config, opts renderOptions) (renderSettings, error) {
	s := renderSettings{
		ExePath:     cfg.TTS.CLIPath,
		OutDir:      cfg.Paths.OutputDir,
		Lang:        cfg.TTS.Lang,
		MaxChars:    cfg.TTS.MaxChunkChars,
		ExtraArgs:   cfg.TTS.ExtraArgs,
		Overwrite:   cfg.Export.Overwrite || opts.Overwrite,
		AlbumArtist: cfg.Export.AlbumArtist,
		Timeout:     time.Duration(cfg.TTS.TimeoutSeconds) * time.Second,
	}

	if opts.OutDir != "" {
		s.OutDir = opts.OutDir
	}
	if opts.Lang != "" {
		s.Lang = opts.Lang
	}
	if opts.MaxChunkChars > 0 {
		s.MaxChars = opts.MaxChunkChars
	}
	if len(opts.TTSArgs) > 0 {
		s.ExtraArgs = append(append([]string(nil), s.ExtraArgs...), opts.TTSArgs...)
	}

	rawFormat := cfg.TTS.Format
	if opts.Format != "" {
		rawFormat = opts.Format
	}
	format, err := tts.NormalizeFormat(rawFormat)
	if err != nil {
		return renderSettings{}, err
	}
	s.Format = format

	return s, nil
}

var newRenderSynthesizer = buildRenderSynthesizer

func buildRenderSynthesizer(s renderSettings, stderr io.Writer) export.Synthesizer {
	engine := &tts.Engine{
		ExePath:   s.ExePath,
		Lang:      s.Lang,
		Format:    s.Format,
		ExtraArgs: s.ExtraArgs,
		Split:     text.Splitter(s.MaxChars),
		Stderr:    stderr,
	}
	if s.Timeout > 0 {
		return &timeoutSynthesizer{inner: engine, timeout: s.Timeout}
	}
	return engine
}

// timeoutSynthesizer bounds each record's synthesis with a deadline.
type timeoutSynthesizer struct {
	inner   export.Synthesizer
	timeout time.Duration
}

func (t *timeoutSynthesizer) Synthesize(ctx context.Context, input string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Synthesize(ctx, input)
}

func runRenderCommand(ctx context.Context, cfg config.Config, opts renderOptions, stdout io.Writer) error {
	settings, err := resolveRenderSettings(cfg, opts)
	if err != nil {
		return err
	}

	lib, err := bib.Load(opts.BibFile)
	if err != nil {
		return err
	}
	logGaps(lib)

	descriptions := describe.All(lib)

	exporter := &export.Exporter{
		Engine:      newRenderSynthesizer(settings, opts.Stderr),
		OutDir:      settings.OutDir,
		Format:      settings.Format,
		Overwrite:   settings.Overwrite,
		AlbumArtist: settings.AlbumArtist,
	}

	var keys []string
	if len(opts.Keys) > 0 {
		keys = opts.Keys
	}

	if err := exporter.ExportAll(ctx, lib, descriptions, keys); err != nil {
		return mapEngineError(err)
	}

	count := len(keys)
	if keys == nil {
		count = len(lib.Records)
	}
	_, _ = fmt.Fprintf(stdout, "rendered %d record(s) to %s\n", count, settings.OutDir)

	return nil
}

// logGaps reports optional fields the composer will paper over, once per
// field kind.
func logGaps(lib *bib.Library) {
	gaps := lib.Gaps()
	slog.Info("library loaded", "source", lib.Source, "records", gaps.Records)
	if gaps.Dates > 0 {
		slog.Warn("records without a date", "count", gaps.Dates)
	}
	if gaps.Venues > 0 {
		slog.Warn("records without a venue", "count", gaps.Venues)
	}
	if gaps.Keywords > 0 {
		slog.Warn("records without keywords", "count", gaps.Keywords)
	}
	if gaps.Abstracts > 0 {
		slog.Warn("records without an abstract", "count", gaps.Abstracts)
	}
}

func mapEngineError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("render failed: tts executable not found; set --tts-cli-path or BIBTTS_TTS_CLI_PATH: %w", err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("render failed: tts command returned non-zero exit; check stderr details above: %w", err)
	}

	return err
}
