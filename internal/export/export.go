// Package export turns composed record descriptions into tagged audio
// files, one per bibliography record.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/go-bib-tts/internal/bib"
	"github.com/example/go-bib-tts/internal/tts"
)

const defaultAlbumArtist = "bibtts"

// Synthesizer produces audio bytes from description text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Exporter writes one narrated audio file per bibliography record.
type Exporter struct {
	Engine      Synthesizer
	OutDir      string
	Format      string // tts.FormatMP3 or tts.FormatWAV, MP3 when empty
	Overwrite   bool
	AlbumArtist string // TPE2 tag value, defaultAlbumArtist when empty
	Log         *slog.Logger
}

func (e *Exporter) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}

func (e *Exporter) albumArtist() string {
	if e.AlbumArtist != "" {
		return e.AlbumArtist
	}
	return defaultAlbumArtist
}

// ExportAll synthesizes and writes audio for the selected records. A nil
// keys slice selects every record in library order. Export is sequential;
// the first failure stops the run.
func (e *Exporter) ExportAll(ctx context.Context, lib *bib.Library, descriptions map[string]string, keys []string) error {
	if e.Engine == nil {
		return fmt.Errorf("no synthesis engine configured")
	}
	format, err := tts.NormalizeFormat(e.Format)
	if err != nil {
		return err
	}

	if keys == nil {
		keys = lib.Keys()
	}
	if len(keys) == 0 {
		return fmt.Errorf("no records to export")
	}

	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, ok := lib.Record(key)
		if !ok {
			return fmt.Errorf("unknown record key %q", key)
		}
		if err := e.exportOne(ctx, rec, descriptions[key], lib.Source, format); err != nil {
			return fmt.Errorf("export %q: %w", key, err)
		}
	}
	return nil
}

func (e *Exporter) exportOne(ctx context.Context, rec bib.Record, description, album, format string) error {
	target := filepath.Join(e.OutDir, rec.Key+"."+format)

	if !e.Overwrite {
		if _, err := os.Stat(target); err == nil {
			e.logger().InfoContext(ctx, "skipping existing file", "key", rec.Key, "path", target)
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", target, err)
		}
	}

	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("missing description")
	}

	data, err := e.Engine.Synthesize(ctx, description)
	if err != nil {
		return err
	}

	if err := e.writeTarget(ctx, target, data, rec, album, format); err != nil {
		return err
	}

	e.logger().InfoContext(ctx, "exported record", "key", rec.Key, "path", target, "bytes", len(data))
	return nil
}

// writeTarget stages the audio in a temp file, tags it there, and renames
// it into place so a failure never leaves a partial target behind.
func (e *Exporter) writeTarget(ctx context.Context, target string, data []byte, rec bib.Record, album, format string) error {
	tmp, err := os.CreateTemp(e.OutDir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if format == tts.FormatMP3 {
		if err := writeTags(tmpPath, rec, album, e.albumArtist()); err != nil {
			return fmt.Errorf("write id3 tags: %w", err)
		}
	} else {
		e.logger().DebugContext(ctx, "id3 tags skipped for non-mp3 output", "key", rec.Key, "format", format)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("finalize %s: %w", target, err)
	}
	return nil
}
