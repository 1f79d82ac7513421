package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/example/go-bib-tts/internal/doctor"
	"github.com/example/go-bib-tts/internal/tts"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var bibFile string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run local environment checks",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			exe := cfg.TTS.CLIPath
			if exe == "" {
				exe = tts.DefaultExePath
			}

			dcfg := doctor.Config{
				TTSVersion: func() (string, error) {
					return probeTTSVersion(exe)
				},
				OutputDir: cfg.Paths.OutputDir,
				BibFile:   bibFile,
			}

			result := doctor.Run(dcfg, os.Stdout)

			// Output format comes from config, so check it here.
			checkOutputFormat(&result, cfg.TTS.Format, os.Stdout)

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(os.Stdout, "doctor checks passed")

			return nil
		},
	}

	cmd.Flags().StringVar(&bibFile, "bib", "", "Optional bibliography file to parse-check")

	return cmd
}

// checkOutputFormat validates the configured output format and folds the
// outcome into result alongside the environment checks.
func checkOutputFormat(result *doctor.Result, format string, w io.Writer) {
	normalized, err := tts.NormalizeFormat(format)
	if err != nil {
		result.AddFailure(fmt.Sprintf("output format: %v", err))
		_, _ = fmt.Fprintf(w, "%s output format: %v\n", doctor.FailMark, err)

		return
	}

	_, _ = fmt.Fprintf(w, "%s output format: %s\n", doctor.PassMark, normalized)
}

// probeTTSVersion runs `<exe> --version` and returns its output.
func probeTTSVersion(exe string) (string, error) {
	out, err := exec.CommandContext(context.Background(), exe, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", exe, err)
	}

	return strings.TrimSpace(string(out)), nil
}
