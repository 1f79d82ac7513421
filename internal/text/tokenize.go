package text

import (
	"strings"
	"unicode/utf8"
)

// MaxChunkChars is the default chunk-length bound in characters, matching
// the input ceiling of hosted TTS front ends such as gtts-cli.
const MaxChunkChars = 100

// Tokenize splits text into chunks of at most maxLen characters each,
// preferring punctuation boundaries, then ':' boundaries, then phrase
// boundaries. Multi-word phrases are never broken across chunks, and words
// are never cut mid-word: a single word or phrase longer than maxLen is
// emitted as an oversized chunk. If maxLen is <= 0, MaxChunkChars applies.
//
// Joining the chunks of one punctuation-delimited piece with single spaces
// reproduces that piece's words in order, except for a dropped sentence
// period.
func Tokenize(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = MaxChunkChars
	}
	var chunks []string
	for _, piece := range splitBase(text) {
		if runeLen(piece) <= maxLen {
			chunks = append(chunks, piece)
			continue
		}
		for _, sub := range strings.Split(piece, ":") {
			sub = strings.TrimSpace(sub)
			if sub == "" {
				continue
			}
			if runeLen(sub) <= maxLen {
				chunks = append(chunks, sub)
				continue
			}
			chunks = append(chunks, chunkByPhrase(sub, maxLen)...)
		}
	}
	return chunks
}

// Splitter returns a tokenizing callback with a fixed bound, in the shape
// synthesis engines accept as their text-splitting policy.
func Splitter(maxLen int) func(string) []string {
	return func(text string) []string {
		return Tokenize(text, maxLen)
	}
}

// chunkByPhrase re-splits an oversized piece at phrase boundaries: words
// are tagged, grouped into phrases, and the units packed greedily into
// chunks of at most maxLen characters.
func chunkByPhrase(piece string, maxLen int) []string {
	words := strings.Fields(piece)
	if len(words) == 0 {
		return nil
	}
	words = detachFinalPeriod(words)
	units := groupPhrases(tagWords(words))
	// A closing period carries no content and must not open a new chunk.
	if n := len(units); n > 0 && units[n-1].text == "." {
		units = units[:n-1]
	}
	return packUnits(units, maxLen)
}

// detachFinalPeriod splits a trailing "word." into "word" and "." so the
// sentence period becomes its own unit. Ellipses stay attached.
func detachFinalPeriod(words []string) []string {
	last := words[len(words)-1]
	if len(last) > 1 && strings.HasSuffix(last, ".") && !strings.HasSuffix(last, "..") {
		words[len(words)-1] = strings.TrimSuffix(last, ".")
		words = append(words, ".")
	}
	return words
}

// packUnits joins consecutive units into chunks. Each unit costs its
// character count plus one separating space; a chunk takes the maximal
// prefix of remaining units whose cumulative cost stays within maxLen. A
// unit too large to fit on its own becomes an oversized single-unit chunk.
func packUnits(units []unit, maxLen int) []string {
	var chunks []string
	for len(units) > 0 {
		take, running := 0, 0
		for _, u := range units {
			running += runeLen(u.text) + 1
			if running > maxLen {
				break
			}
			take++
		}
		if take == 0 {
			take = 1
		}
		texts := make([]string, take)
		for i := range texts {
			texts[i] = units[i].text
		}
		chunks = append(chunks, strings.Join(texts, " "))
		units = units[take:]
	}
	return chunks
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
