// Package doctor provides environment preflight checks for bibtts.
package doctor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/example/go-bib-tts/internal/bib"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// VersionFunc returns a version string or an error if the component is unavailable.
type VersionFunc func() (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// TTSVersion returns the output of the TTS command's --version call.
	TTSVersion VersionFunc
	// OutputDir is the export target directory to probe for writability.
	OutputDir string
	// BibFile is an optional bibliography path to parse-check.
	BibFile string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- TTS command --------------------------------------------------------
	ver, err := cfg.TTSVersion()
	if err != nil {
		res.fail(fmt.Sprintf("tts command: %v", err))
		fmt.Fprintf(w, "%s tts command: not found (%v)\n", FailMark, err)
	} else {
		fmt.Fprintf(w, "%s tts command: %s\n", PassMark, ver)
	}

	// ---- output directory ---------------------------------------------------
	if cfg.OutputDir != "" {
		note, err := checkOutputDir(cfg.OutputDir)
		if err != nil {
			res.fail(fmt.Sprintf("output dir %q: %v", cfg.OutputDir, err))
			fmt.Fprintf(w, "%s output dir %s: %v\n", FailMark, cfg.OutputDir, err)
		} else {
			fmt.Fprintf(w, "%s output dir: %s (%s)\n", PassMark, cfg.OutputDir, note)
		}
	}

	// ---- bibliography file --------------------------------------------------
	if cfg.BibFile != "" {
		lib, err := bib.Load(cfg.BibFile)
		if err != nil {
			res.fail(fmt.Sprintf("bibliography %q: %v", cfg.BibFile, err))
			fmt.Fprintf(w, "%s bibliography %s: %v\n", FailMark, cfg.BibFile, err)
		} else {
			fmt.Fprintf(w, "%s bibliography: %d records\n", PassMark, len(lib.Records))
		}
	}

	return res
}

// checkOutputDir probes dir with a throwaway temp file. A missing directory
// passes, since export creates it on first write.
func checkOutputDir(dir string) (string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "will be created", nil
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory")
	}

	f, err := os.CreateTemp(dir, ".bibtts-doctor-*")
	if err != nil {
		return "", fmt.Errorf("not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return "", fmt.Errorf("cleanup probe file: %w", err)
	}
	return "writable", nil
}
