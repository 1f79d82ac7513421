package text

import (
	"strings"
	"testing"
)

func TestTokenizeShortInputs(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{
			name:   "short text without punctuation passes through",
			text:   "Hello world",
			maxLen: 100,
			want:   []string{"Hello world"},
		},
		{
			name:   "short sentence keeps its final period",
			text:   "Hello world.",
			maxLen: 100,
			want:   []string{"Hello world."},
		},
		{
			name:   "comma boundary splits even short text",
			text:   "In 2020, John Smith published a paper",
			maxLen: 100,
			want:   []string{"In 2020", "John Smith published a paper"},
		},
		{
			name:   "colon survives inside a short piece",
			text:   "entitled: Energy storage",
			maxLen: 100,
			want:   []string{"entitled: Energy storage"},
		},
		{
			name:   "empty text yields no chunks",
			text:   "",
			maxLen: 100,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, tt.maxLen)
			assertChunks(t, got, tt.want)
		})
	}
}

func TestTokenizeColonFallback(t *testing.T) {
	text := "Publication keywords include: heat transfer enhancement and phase change materials for thermal energy storage"
	want := []string{
		"Publication keywords include",
		"heat transfer enhancement and phase change materials for thermal energy storage",
	}

	got := Tokenize(text, 100)
	assertChunks(t, got, want)
}

func TestTokenizePhraseFallback(t *testing.T) {
	text := "The experimental results demonstrate that the novel numerical framework can accurately predict " +
		"the unsteady aerodynamic loads on the turbine blades and the adaptive refinement strategy " +
		"will substantially reduce the overall computational cost of transient simulations."
	want := []string{
		"The experimental results demonstrate that the novel numerical framework can accurately predict",
		"the unsteady aerodynamic loads on the turbine blades and the adaptive refinement strategy",
		"will substantially reduce the overall computational cost of transient simulations",
	}

	got := Tokenize(text, 100)
	assertChunks(t, got, want)

	for i, c := range got {
		if runeLen(c) > 100 {
			t.Errorf("chunk[%d] is %d chars, exceeds bound: %q", i, runeLen(c), c)
		}
	}

	// Joining the chunks reproduces the words, minus the sentence period.
	if joined := strings.Join(got, " "); joined != strings.TrimSuffix(text, ".") {
		t.Errorf("joined chunks = %q, want original words", joined)
	}
}

func TestTokenizePhrasesStayIntact(t *testing.T) {
	text := "The experimental results demonstrate that the novel numerical framework can accurately predict " +
		"the unsteady aerodynamic loads on the turbine blades and the adaptive refinement strategy " +
		"will substantially reduce the overall computational cost of transient simulations."
	phrases := []string{
		"that the novel numerical framework",
		"can accurately predict",
		"the unsteady aerodynamic loads on the turbine blades",
		"the adaptive refinement strategy",
		"will substantially reduce",
		"the overall computational cost of transient simulations",
	}

	got := Tokenize(text, 100)
	for _, phrase := range phrases {
		hits := 0
		for _, c := range got {
			hits += strings.Count(c, phrase)
		}
		if hits != 1 {
			t.Errorf("phrase %q found %d times across chunks %q, want exactly 1", phrase, hits, got)
		}
	}
}

func TestTokenizeOversizedWord(t *testing.T) {
	word := strings.Repeat("x", 130)

	got := Tokenize(word, 100)
	if len(got) != 1 || got[0] != word {
		t.Fatalf("Tokenize(oversized word) = %q, want the word as a single oversized chunk", got)
	}
}

func TestTokenizeDefaultBound(t *testing.T) {
	text := "Publication keywords include: heat transfer enhancement and phase change materials for thermal energy storage"

	got := Tokenize(text, 0)
	if len(got) != 2 {
		t.Fatalf("Tokenize with maxLen 0 returned %d chunks, want 2", len(got))
	}
	for i, c := range got {
		if runeLen(c) > MaxChunkChars {
			t.Errorf("chunk[%d] is %d chars, exceeds default bound", i, runeLen(c))
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "In 2019, A. Author published a paper entitled: A study of the thermal behavior of encapsulated phase change materials in building walls."

	first := Tokenize(text, 100)
	second := Tokenize(text, 100)
	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %q vs %q", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk[%d] differs between calls: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestTokenizeBoundHolds(t *testing.T) {
	texts := []string{
		"A short one.",
		"The present work investigates the influence of the inlet geometry on the performance of a small centrifugal compressor operating at very high rotational speeds under varying thermal conditions.",
		"Results show that the optimized design will consistently deliver a significant improvement of the overall efficiency across the entire operating range of the machine without any measurable penalty.",
	}

	for _, maxLen := range []int{60, 100} {
		for _, text := range texts {
			for i, c := range Tokenize(text, maxLen) {
				if runeLen(c) > maxLen && len(strings.Fields(c)) > 1 {
					t.Errorf("maxLen=%d: chunk[%d] = %q has %d chars", maxLen, i, c, runeLen(c))
				}
			}
		}
	}
}

func TestSplitterUsesFixedBound(t *testing.T) {
	split := Splitter(100)

	got := split("Publication keywords include: heat transfer enhancement and phase change materials for thermal energy storage")
	if len(got) != 2 {
		t.Fatalf("Splitter(100) returned %d chunks, want 2", len(got))
	}
}

func assertChunks(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d chunks %q, want %d chunks %q", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
