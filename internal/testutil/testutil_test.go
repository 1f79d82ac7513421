package testutil_test

import (
	"os"
	"testing"

	"github.com/example/go-bib-tts/internal/testutil"
)

func TestRequireTTSCLI_SkipsWhenAbsent(t *testing.T) {
	// Temporarily point the binary lookup at something that cannot exist.
	orig := os.Getenv("BIBTTS_TTS_CLI_PATH")
	t.Setenv("BIBTTS_TTS_CLI_PATH", "/nonexistent/tts-binary")
	defer func() {
		if orig == "" {
			os.Unsetenv("BIBTTS_TTS_CLI_PATH")
		}
	}()

	skipped := false
	fakeT := &skipTracker{TB: t, onSkip: func() { skipped = true }}
	testutil.RequireTTSCLI(fakeT)
	if !skipped {
		t.Error("expected RequireTTSCLI to skip when binary is absent")
	}
}

// skipTracker is a minimal testing.TB implementation that intercepts Skip calls.
type skipTracker struct {
	testing.TB
	onSkip func()
}

func (s *skipTracker) Helper() {}

func (s *skipTracker) Skipf(_ string, _ ...any) {
	s.onSkip()
	// Do NOT call s.TB.Skip, that would actually skip the outer test.
}
