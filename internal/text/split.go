package text

import "strings"

// Boundary punctuation classes for the base split. Three rules apply:
//
//   - tone marks (?, ! and their fullwidth forms) end a piece and stay
//     attached to it, preserving the intonation cue for synthesis;
//   - '.' or ',' followed by a space ends a piece and is dropped, unless the
//     period closes a single-letter abbreviation ("e.g.", "U.S.");
//   - pause punctuation (brackets, semicolons, dashes, CJK stops, newlines)
//     ends a piece and is dropped.
//
// ASCII ':' is not a boundary here. Oversized pieces are re-split on it
// later, so short "label: value" runs survive the base pass intact.
const (
	toneMarks  = "?!？！"
	pausePunct = "¡()[]¿…‥،;—。，、：\n"
	allPunct   = toneMarks + ".,:" + pausePunct
)

// splitBase cuts text at punctuation boundaries and returns the trimmed
// pieces. Empty pieces and pieces consisting only of punctuation are
// dropped.
func splitBase(text string) []string {
	runes := []rune(text)
	var pieces []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case strings.ContainsRune(toneMarks, r):
			// Split after the mark, keeping it.
			pieces = appendPiece(pieces, runes[start:i+1])
			start = i + 1
		case (r == '.' || r == ',') && i+1 < len(runes) && runes[i+1] == ' ':
			if closesAbbreviation(runes, i) {
				continue
			}
			pieces = appendPiece(pieces, runes[start:i])
			start = i + 2
			i++
		case strings.ContainsRune(pausePunct, r):
			pieces = appendPiece(pieces, runes[start:i])
			start = i + 1
		}
	}
	if start < len(runes) {
		pieces = appendPiece(pieces, runes[start:])
	}
	return pieces
}

// closesAbbreviation reports whether the mark at runes[i] directly follows a
// single letter that itself follows a period, as in "e.g." or "U.S.".
func closesAbbreviation(runes []rune, i int) bool {
	if i < 2 {
		return false
	}
	return runes[i-2] == '.' && isASCIILetter(runes[i-1])
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func appendPiece(pieces []string, runes []rune) []string {
	s := strings.TrimSpace(string(runes))
	if s == "" || punctOnly(s) {
		return pieces
	}
	return append(pieces, s)
}

// punctOnly reports whether s contains nothing but boundary punctuation and
// spaces.
func punctOnly(s string) bool {
	for _, r := range s {
		if r != ' ' && !strings.ContainsRune(allPunct, r) {
			return false
		}
	}
	return true
}
