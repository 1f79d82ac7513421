package bib

import (
	"errors"
	"strings"
)

// FormatAuthors converts a raw bibliography author field into its spoken
// display form. Authors are separated by the literal " and "; names written
// "Last, First" are reversed to "First Last". One author is returned as-is,
// two join with "and", three with a serial comma, and four or more collapse
// to "<first author> et al".
func FormatAuthors(raw string) (string, error) {
	var names []string
	for _, part := range strings.Split(raw, " and ") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, firstLast(part))
	}
	if len(names) == 0 {
		return "", errors.New("empty author field")
	}

	switch len(names) {
	case 1:
		return names[0], nil
	case 2:
		return names[0] + " and " + names[1], nil
	case 3:
		return names[0] + ", " + names[1] + ", and " + names[2], nil
	default:
		return names[0] + " et al", nil
	}
}

// firstLast normalizes one comma-separated name. The final segment holds the
// given name in bibliographic order and moves to the front: "Smith, John"
// becomes "John Smith", "de Vries, Jr, Willem" becomes "Willem de Vries Jr".
func firstLast(name string) string {
	if !strings.Contains(name, ",") {
		return name
	}
	parts := strings.Split(name, ",")
	segs := make([]string, 0, len(parts))
	if last := strings.TrimSpace(parts[len(parts)-1]); last != "" {
		segs = append(segs, last)
	}
	for _, p := range parts[:len(parts)-1] {
		if p = strings.TrimSpace(p); p != "" {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, " ")
}
