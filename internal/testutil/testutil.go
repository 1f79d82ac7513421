// Package testutil provides shared skip helpers for integration tests.
//
// Each helper calls t.Skip with a clear human-readable reason when the named
// prerequisite is absent, so integration tests remain runnable in partial
// environments without failing noisily.
//
// Typical usage:
//
//	func TestMyIntegration(t *testing.T) {
//	    testutil.RequireTTSCLI(t)
//	    ...
//	}
package testutil

import (
	"os"
	"os/exec"
	"testing"
)

// RequireTTSCLI skips the test if the text-to-speech binary is not found in
// PATH or the path given by the BIBTTS_TTS_CLI_PATH environment variable.
func RequireTTSCLI(tb testing.TB) {
	tb.Helper()

	exe := os.Getenv("BIBTTS_TTS_CLI_PATH")
	if exe == "" {
		exe = "gtts-cli"
	}

	_, err := exec.LookPath(exe)
	if err != nil {
		tb.Skipf("tts binary not available (%q not in PATH); set BIBTTS_TTS_CLI_PATH to override", exe)
	}
}
