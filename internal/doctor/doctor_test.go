package doctor_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/example/go-bib-tts/internal/doctor"
)

// ---------------------------------------------------------------------------
// all-pass scenario
// ---------------------------------------------------------------------------

func TestRun_AllChecksPass(t *testing.T) {
	bibFile := writeBibFixture(t)

	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "gtts-cli, version 2.5.1", nil },
		OutputDir:  t.TempDir(),
		BibFile:    bibFile,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if result.Failed() {
		t.Errorf("expected all checks to pass; failures: %v", result.Failures())
	}

	body := out.String()
	if !strings.Contains(body, "tts command") {
		t.Error("output should mention the tts command")
	}

	if !strings.Contains(body, "writable") {
		t.Errorf("output should report a writable output dir; got:\n%s", body)
	}

	if !strings.Contains(body, "1 records") {
		t.Errorf("output should report the record count; got:\n%s", body)
	}
}

// ---------------------------------------------------------------------------
// TTS command missing
// ---------------------------------------------------------------------------

func TestRun_TTSCommandMissingFails(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "", errBinaryNotFound },
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure when the tts command is not found")
	}

	if !hasFailureContaining(result.Failures(), "tts command") {
		t.Errorf("expected failure mentioning the tts command, got: %v", result.Failures())
	}
}

// ---------------------------------------------------------------------------
// output directory
// ---------------------------------------------------------------------------

func TestRun_MissingOutputDirPasses(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "1.0.0", nil },
		OutputDir:  filepath.Join(t.TempDir(), "not", "yet", "created"),
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if result.Failed() {
		t.Errorf("missing output dir should pass; failures: %v", result.Failures())
	}

	if !strings.Contains(out.String(), "will be created") {
		t.Errorf("output should note deferred creation; got:\n%s", out.String())
	}
}

func TestRun_OutputDirIsFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "1.0.0", nil },
		OutputDir:  path,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure when output dir path is a file")
	}

	if !hasFailureContaining(result.Failures(), "not a directory") {
		t.Errorf("expected 'not a directory' failure, got: %v", result.Failures())
	}
}

func TestRun_ReadOnlyOutputDirFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced the same way on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root bypasses directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "1.0.0", nil },
		OutputDir:  dir,
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure for read-only output dir")
	}

	if !hasFailureContaining(result.Failures(), "not writable") {
		t.Errorf("expected 'not writable' failure, got: %v", result.Failures())
	}
}

// ---------------------------------------------------------------------------
// bibliography parse check
// ---------------------------------------------------------------------------

func TestRun_BibFileMissingFails(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "1.0.0", nil },
		BibFile:    "/nonexistent/refs.bib",
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if !result.Failed() {
		t.Fatal("expected failure for missing bibliography file")
	}

	if !hasFailureContaining(result.Failures(), "bibliography") {
		t.Errorf("expected failure mentioning bibliography, got: %v", result.Failures())
	}
}

func TestRun_BibFileOmittedSkipsCheck(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "1.0.0", nil },
	}

	var out strings.Builder
	result := doctor.Run(cfg, &out)

	if result.Failed() {
		t.Errorf("expected pass without bibliography check; failures: %v", result.Failures())
	}

	if strings.Contains(out.String(), "bibliography") {
		t.Errorf("output should not mention bibliography when none is given; got:\n%s", out.String())
	}
}

// ---------------------------------------------------------------------------
// marker output
// ---------------------------------------------------------------------------

func TestRun_OutputContainsPassAndFailMarkers(t *testing.T) {
	cfg := doctor.Config{
		TTSVersion: func() (string, error) { return "", errBinaryNotFound },
		OutputDir:  t.TempDir(),
	}

	var out strings.Builder
	doctor.Run(cfg, &out)

	body := out.String()
	if !strings.Contains(body, doctor.PassMark) {
		t.Errorf("output missing pass marker %q:\n%s", doctor.PassMark, body)
	}

	if !strings.Contains(body, doctor.FailMark) {
		t.Errorf("output missing fail marker %q:\n%s", doctor.FailMark, body)
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

var errBinaryNotFound = sentinelError("binary not found")

func hasFailureContaining(failures []string, substr string) bool {
	substr = strings.ToLower(substr)
	for _, f := range failures {
		if strings.Contains(strings.ToLower(f), substr) {
			return true
		}
	}

	return false
}

func writeBibFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "refs.bib")
	content := `@article{smith2020,
  author = {Smith, John},
  title  = {A Study of Things},
  year   = {2020},
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
