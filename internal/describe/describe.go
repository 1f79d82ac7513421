// Package describe renders bibliography records into the spoken summary
// paragraphs that get synthesized to audio.
package describe

import (
	"fmt"
	"strings"

	"github.com/example/go-bib-tts/internal/bib"
)

// Compose renders one record into its summary paragraph. The shape is
// fixed: an optional date lead-in, the author/title sentence, optional venue
// and keyword sentences, the abstract (or a fallback sentence), and a
// closing attribution. Identical input always yields identical output.
func Compose(rec bib.Record) string {
	var b strings.Builder

	if rec.Date != "" {
		fmt.Fprintf(&b, "In %s, ", rec.Date)
	}
	fmt.Fprintf(&b, "%s published a paper entitled: %s.", rec.Author, rec.Title)
	if rec.Venue != "" {
		fmt.Fprintf(&b, " This was published in %s.", rec.Venue)
	}
	if len(rec.Keywords) > 0 {
		fmt.Fprintf(&b, " Publication keywords include: %s.", joinSpoken(rec.Keywords))
	}
	if rec.Abstract != "" {
		b.WriteString(" The abstract reads: " + rec.Abstract)
	} else {
		b.WriteString(" There is no abstract available.")
	}
	fmt.Fprintf(&b, " This concludes the summary of the work by %s.", rec.Author)

	return b.String()
}

// All composes descriptions for every record, keyed by cite key.
func All(lib *bib.Library) map[string]string {
	descs := make(map[string]string, len(lib.Records))
	for _, rec := range lib.Records {
		descs[rec.Key] = Compose(rec)
	}
	return descs
}

// joinSpoken joins items the way they are read aloud: "a", "a and b",
// "a, b, and c".
func joinSpoken(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
