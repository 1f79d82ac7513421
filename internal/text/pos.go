package text

import "strings"

// Tag is the word class consumed by the phrase grammar. The set is closed;
// words matching no lexicon entry and no suffix rule default to Noun.
type Tag uint8

const (
	TagNoun Tag = iota
	TagVerb
	TagAdjective
	TagAdverb
	TagDeterminer
	TagPreposition
	TagModal
	TagCardinal
	TagPronoun
	TagTo
	TagConjunction
	TagSymbol
)

var tagNames = [...]string{
	TagNoun:        "Noun",
	TagVerb:        "Verb",
	TagAdjective:   "Adjective",
	TagAdverb:      "Adverb",
	TagDeterminer:  "Determiner",
	TagPreposition: "Preposition",
	TagModal:       "Modal",
	TagCardinal:    "Cardinal",
	TagPronoun:     "Pronoun",
	TagTo:          "To",
	TagConjunction: "Conjunction",
	TagSymbol:      "Symbol",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Tag(?)"
}

// taggedWord pairs a word with its assigned class.
type taggedWord struct {
	word string
	tag  Tag
}

func tagWords(words []string) []taggedWord {
	tagged := make([]taggedWord, len(words))
	for i, w := range words {
		tagged[i] = taggedWord{word: w, tag: tagWord(w)}
	}
	return tagged
}

// tagWord classifies a single word: punctuation, then numerals, then the
// closed-class lexicon, then suffix rules, then the Noun fallback.
func tagWord(word string) Tag {
	if word == "" || punctOnly(word) {
		return TagSymbol
	}
	lower := strings.ToLower(word)
	if isNumeral(lower) {
		return TagCardinal
	}
	if tag, ok := lexicon[lower]; ok {
		return tag
	}
	return tagBySuffix(lower)
}

// isNumeral reports whether s is a digit sequence, allowing the usual
// grouping and range characters ("1,000", "3.14", "2019-2020").
func isNumeral(s string) bool {
	digit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r == '.' || r == ',' || r == '-' || r == '/' || r == '%':
		default:
			return false
		}
	}
	return digit
}

func tagBySuffix(lower string) Tag {
	if nounOverrides[lower] {
		return TagNoun
	}
	n := len(lower)
	switch {
	case n > 4 && strings.HasSuffix(lower, "ly"):
		return TagAdverb
	case n > 4 && strings.HasSuffix(lower, "ics"):
		return TagNoun
	case n > 4 && strings.HasSuffix(lower, "ing"):
		return TagVerb
	case n > 3 && strings.HasSuffix(lower, "ed"):
		return TagVerb
	}
	for _, suf := range adjectiveSuffixes {
		if n > len(suf)+2 && strings.HasSuffix(lower, suf) {
			return TagAdjective
		}
	}
	return TagNoun
}

var adjectiveSuffixes = []string{"ical", "able", "ible", "ous", "ful", "ive", "al", "ary", "less"}

// nounOverrides lists common nouns the suffix rules would misclassify.
var nounOverrides = map[string]bool{
	"anomaly": true, "assembly": true, "boundary": true, "dictionary": true,
	"family": true, "journal": true, "interval": true, "library": true,
	"material": true, "monopoly": true, "objective": true, "perspective": true,
	"proposal": true, "signal": true, "speed": true, "string": true,
	"summary": true, "supply": true, "survival": true, "thing": true,
	"total": true, "trial": true, "vocabulary": true,
}

// lexicon holds the closed word classes plus irregular verbs and frequent
// words whose class the suffix rules cannot recover.
var lexicon = buildLexicon()

func buildLexicon() map[string]Tag {
	lex := make(map[string]Tag, 512)
	add := func(tag Tag, words string) {
		for _, w := range strings.Fields(words) {
			lex[w] = tag
		}
	}

	add(TagDeterminer, `
		the a an this that these those each every either neither some any no
		all both another such what which whose`)

	add(TagPreposition, `
		of in on at by for with from into onto over under between among
		through during within without against about across after before
		behind below beneath beside besides beyond near toward towards upon
		via per since until despite amid along around unless although though
		because while whereas whether if as than like`)

	add(TagModal, `can could may might must shall should will would ought`)

	add(TagTo, `to`)

	// Conjunctions appear in no phrase pattern; tagging them keeps them out
	// of adjacent noun runs.
	add(TagConjunction, `and or but nor yet versus`)

	add(TagPronoun, `
		i you he she it we they me him her us them mine yours hers ours
		theirs myself yourself himself herself itself ourselves themselves
		my your his its our their who whom`)

	add(TagAdverb, `
		not very also often never always sometimes usually now then here
		there well still just already almost quite rather too soon thus
		hence moreover furthermore however therefore nevertheless meanwhile
		instead again once twice further perhaps maybe indeed together
		alone away back forth`)

	add(TagCardinal, `
		zero one two three four five six seven eight nine ten eleven twelve
		twenty thirty forty fifty hundred thousand million billion`)

	add(TagVerb, `
		be is am are was were been being have has had having do does did
		done doing go goes went gone get gets got gotten make makes made
		take takes took taken come comes came see sees saw seen know knows
		knew known find finds found give gives gave given tell tells told
		think thinks thought become becomes became show shows shown let lets
		put puts bring brings brought begin begins began begun keep keeps
		kept hold holds held write writes wrote written read reads stand
		stands stood hear hears heard mean means meant set sets meet meets
		met run runs ran pay pays paid speak speaks spoke spoken leave
		leaves left send sends sent build builds built fall falls fell
		fallen grow grows grew grown lose loses lost draw draws drew drawn
		rise rises rose risen drive drives drove driven choose chooses chose
		chosen seek seeks sought deal deals dealt win wins won lead leads
		led lie lies lay
		include includes conclude concludes describe describes propose
		proposes provide provides contain contains require requires improve
		improves reduce reduces obtain obtains compare compares analyze
		analyzes evaluate evaluates examine examines demonstrate
		demonstrates introduce introduces investigate investigates develop
		develops achieve achieves enable enables allow allows observe
		observes measure measures derive derives solve solves apply applies
		consider considers assume assumes define defines determine
		determines explore explores predict predicts publish publishes
		establish establishes discuss discusses`)

	add(TagAdjective, `
		new novel several various numerous many few more most less least
		other same own only good better best bad worse worst high higher
		highest low lower lowest large larger largest small smaller
		smallest great greater greatest long longer longest short shorter
		shortest important main major minor early earlier late later recent
		previous current future first second third last next likely
		unlikely available necessary sufficient significant efficient
		effective robust accurate exact approximate general specific
		particular common rare simple complex linear nonlinear dynamic
		static optimal numerical analytical experimental theoretical
		computational empirical statistical practical physical chemical
		biological electrical mechanical thermal spatial temporal global
		local overall entire whole full partial final initial standard
		conventional traditional modern advanced basic fundamental
		essential critical crucial relevant suitable appropriate consistent
		stable unstable sensitive unsteady steady adaptive present`)

	return lex
}
