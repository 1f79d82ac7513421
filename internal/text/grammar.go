package text

import "strings"

// The phrase grammar groups a tagged word sequence into units that should
// not be separated by a chunk boundary. Patterns are tried at every
// position; the longest match wins and ties go to the earlier pattern.
// Words matching no pattern stay as single ungrouped units.

const (
	labelNounPrepPhrase = "NounWithPrepositionalPhrase"
	labelNounPhrase     = "NounPhrase"
	labelVerbPhrase     = "VerbPhrase"
)

// patternElem matches between min and max consecutive words whose tag is in
// tags. max == 0 means unbounded.
type patternElem struct {
	tags []Tag
	min  int
	max  int
}

func one(tags ...Tag) patternElem      { return patternElem{tags: tags, min: 1, max: 1} }
func optional(tags ...Tag) patternElem { return patternElem{tags: tags, min: 0, max: 1} }
func star(tags ...Tag) patternElem     { return patternElem{tags: tags} }
func plus(tags ...Tag) patternElem     { return patternElem{tags: tags, min: 1} }

type phrasePattern struct {
	label string
	elems []patternElem
}

var phrasePatterns = []phrasePattern{
	// Determiner-led noun phrase with a prepositional attachment:
	// "the effect of additives".
	{labelNounPrepPhrase, []patternElem{
		one(TagDeterminer, TagCardinal),
		star(TagAdjective),
		plus(TagNoun),
		one(TagPreposition),
		optional(TagDeterminer),
		star(TagAdjective),
		plus(TagNoun),
	}},
	// Preposition-led noun phrase: "in the energy community".
	{labelNounPrepPhrase, []patternElem{
		one(TagPreposition),
		optional(TagDeterminer, TagCardinal),
		star(TagAdjective),
		plus(TagNoun),
	}},
	// Preposition-led pronoun: "by them".
	{labelNounPrepPhrase, []patternElem{
		one(TagPreposition),
		optional(TagDeterminer, TagCardinal),
		star(TagAdjective),
		one(TagPronoun),
	}},
	// Plain noun phrase: "a novel numerical framework".
	{labelNounPhrase, []patternElem{
		star(TagDeterminer, TagCardinal),
		star(TagAdjective),
		plus(TagNoun),
	}},
	// Verb group: "can accurately predict", "is very effective".
	{labelVerbPhrase, []patternElem{
		optional(TagModal),
		optional(TagAdverb),
		plus(TagVerb),
		optional(TagAdverb),
		star(TagAdjective),
	}},
	// Infinitive clause ending in nouns: "to reduce fuel consumption".
	{labelVerbPhrase, []patternElem{
		one(TagTo),
		optional(TagAdverb),
		one(TagVerb),
		optional(TagAdverb),
		plus(TagNoun),
	}},
}

func (el patternElem) allows(tag Tag) bool {
	for _, t := range el.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// matchAt returns the number of consecutive words starting at pos that
// satisfy the pattern, or 0 when it does not match. Elements consume
// greedily; adjacent elements never share a tag, so greedy is exact.
func (p phrasePattern) matchAt(seq []taggedWord, pos int) int {
	i := pos
	for _, el := range p.elems {
		taken := 0
		for i < len(seq) && el.allows(seq[i].tag) && (el.max == 0 || taken < el.max) {
			i++
			taken++
		}
		if taken < el.min {
			return 0
		}
	}
	return i - pos
}

// unit is a phrase collapsed to flat text, or a single ungrouped word. The
// tag is the last member's tag; label is empty for ungrouped words.
type unit struct {
	text  string
	tag   Tag
	label string
}

// groupPhrases scans the tagged sequence left to right, emitting one unit
// per phrase match and one per unmatched word.
func groupPhrases(seq []taggedWord) []unit {
	var units []unit
	pos := 0
	for pos < len(seq) {
		bestLen, bestPat := 0, -1
		for i, p := range phrasePatterns {
			if n := p.matchAt(seq, pos); n > bestLen {
				bestLen, bestPat = n, i
			}
		}
		if bestPat < 0 {
			units = append(units, unit{text: seq[pos].word, tag: seq[pos].tag})
			pos++
			continue
		}
		units = append(units, consolidate(seq[pos:pos+bestLen], phrasePatterns[bestPat].label))
		pos += bestLen
	}
	return units
}

// consolidate joins a matched run into a single unit carrying the final
// word's tag.
func consolidate(run []taggedWord, label string) unit {
	words := make([]string, len(run))
	for i, tw := range run {
		words[i] = tw.word
	}
	return unit{
		text:  strings.Join(words, " "),
		tag:   run[len(run)-1].tag,
		label: label,
	}
}
