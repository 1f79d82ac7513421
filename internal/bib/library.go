package bib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickng/bibtex"
)

// Record is one bibliography entry normalized for description composition.
// Optional fields are empty when the entry lacks them.
type Record struct {
	Key      string
	Type     string
	Author   string // spoken display form, see FormatAuthors
	Title    string
	Date     string // "year" or "month year"
	Venue    string // journal for articles, booktitle otherwise
	Keywords []string
	Abstract string
}

// FieldGaps counts records missing each optional field.
type FieldGaps struct {
	Records   int
	Dates     int
	Venues    int
	Keywords  int
	Abstracts int
}

// Library holds the parsed records of one bibliography file, in file order.
type Library struct {
	Source  string // base name of the bibliography file
	Records []Record

	byKey map[string]int
}

// Load reads and parses a bibliography file.
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bibliography: %w", err)
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// Parse reads bibliography records from r. source names the origin and ends
// up as the album tag on exported audio. Duplicate cite keys are an error,
// as are records without an author or a title.
func Parse(r io.Reader, source string) (*Library, error) {
	data, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse bibliography: %w", err)
	}

	lib := &Library{
		Source: source,
		byKey:  make(map[string]int, len(data.Entries)),
	}
	for _, entry := range data.Entries {
		rec, err := newRecord(entry)
		if err != nil {
			return nil, err
		}
		if _, dup := lib.byKey[rec.Key]; dup {
			return nil, fmt.Errorf("duplicate cite key %q", rec.Key)
		}
		lib.byKey[rec.Key] = len(lib.Records)
		lib.Records = append(lib.Records, rec)
	}
	return lib, nil
}

func newRecord(entry *bibtex.BibEntry) (Record, error) {
	fields := make(map[string]string, len(entry.Fields))
	for name, value := range entry.Fields {
		fields[strings.ToLower(name)] = Clean(value.String())
	}

	rec := Record{
		Key:  entry.CiteName,
		Type: strings.ToLower(entry.Type),
	}

	raw := fields["author"]
	if raw == "" {
		return Record{}, fmt.Errorf("record %q: missing author", rec.Key)
	}
	author, err := FormatAuthors(raw)
	if err != nil {
		return Record{}, fmt.Errorf("record %q: %w", rec.Key, err)
	}
	rec.Author = author

	if rec.Title = fields["title"]; rec.Title == "" {
		return Record{}, fmt.Errorf("record %q: missing title", rec.Key)
	}

	if year := fields["year"]; year != "" {
		rec.Date = year
		if month := fields["month"]; month != "" {
			rec.Date = month + " " + year
		}
	}

	if rec.Type == "article" {
		rec.Venue = fields["journal"]
	} else {
		rec.Venue = fields["booktitle"]
	}

	for _, kw := range strings.Split(fields["keywords"], ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			rec.Keywords = append(rec.Keywords, kw)
		}
	}

	rec.Abstract = fields["abstract"]
	return rec, nil
}

// Keys returns the cite keys in file order.
func (l *Library) Keys() []string {
	keys := make([]string, len(l.Records))
	for i, rec := range l.Records {
		keys[i] = rec.Key
	}
	return keys
}

// Record returns the record for a cite key.
func (l *Library) Record(key string) (Record, bool) {
	i, ok := l.byKey[key]
	if !ok {
		return Record{}, false
	}
	return l.Records[i], true
}

// Gaps counts records missing each optional field.
func (l *Library) Gaps() FieldGaps {
	gaps := FieldGaps{Records: len(l.Records)}
	for _, rec := range l.Records {
		if rec.Date == "" {
			gaps.Dates++
		}
		if rec.Venue == "" {
			gaps.Venues++
		}
		if len(rec.Keywords) == 0 {
			gaps.Keywords++
		}
		if rec.Abstract == "" {
			gaps.Abstracts++
		}
	}
	return gaps
}
