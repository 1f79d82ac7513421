//go:build integration

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/example/go-bib-tts/internal/testutil"
)

// runDoctorCapture executes the doctor command with the given extra args and
// returns the combined stdout output and the execution error (if any).
// The doctor command writes directly to os.Stdout/os.Stderr, so we redirect
// those descriptors via a pipe for the duration of the call.
func runDoctorCapture(t testing.TB, args ...string) (stdout string, err error) {
	t.Helper()

	pr, pw, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("os.Pipe: %v", pipeErr)
	}
	origStdout := os.Stdout
	origStderr := os.Stderr
	os.Stdout = pw
	os.Stderr = pw // capture stderr into the same buffer for simplicity

	root := NewRootCmd()
	root.SetArgs(append([]string{"doctor"}, args...))
	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	os.Stderr = origStderr

	var buf bytes.Buffer
	if _, readErr := buf.ReadFrom(pr); readErr != nil {
		t.Fatalf("read pipe: %v", readErr)
	}
	pr.Close()

	return buf.String(), execErr
}

// TestDoctorPasses_CLI runs the doctor command against a working local
// environment (gtts-cli binary present) and asserts exit 0 with
// "doctor checks passed" in output.
func TestDoctorPasses_CLI(t *testing.T) {
	testutil.RequireTTSCLI(t)

	t.Setenv("BIBTTS_PATHS_OUTPUT_DIR", t.TempDir())
	bibFile := writeRenderFixture(t)

	out, err := runDoctorCapture(t, "--bib", bibFile)
	if err != nil {
		t.Fatalf("doctor failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "doctor checks passed") {
		t.Errorf("expected 'doctor checks passed' in output, got:\n%s", out)
	}
	if !strings.Contains(out, "2 records") {
		t.Errorf("expected bibliography record count in output, got:\n%s", out)
	}
}

// TestDoctorFails_MissingBib runs the doctor command with a bibliography
// path that does not exist and asserts a non-zero result naming the check.
func TestDoctorFails_MissingBib(t *testing.T) {
	testutil.RequireTTSCLI(t)

	t.Setenv("BIBTTS_PATHS_OUTPUT_DIR", t.TempDir())

	out, err := runDoctorCapture(t, "--bib", "/nonexistent/refs.bib")
	if err == nil {
		t.Fatalf("expected doctor to fail, output:\n%s", out)
	}
	if !strings.Contains(out, "bibliography") {
		t.Errorf("expected bibliography failure in output, got:\n%s", out)
	}
}
