package bib

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// latexStripper removes the LaTeX markup bibliography fields commonly carry:
// braces and math dollars vanish, ties become plain spaces.
var latexStripper = strings.NewReplacer("{", "", "}", "", "$", "", "~", " ")

// Clean normalizes a raw field value for spoken output: LaTeX markup is
// stripped, HTML entities are decoded, HTML tags are removed, and whitespace
// runs collapse to single spaces.
func Clean(s string) string {
	s = latexStripper.Replace(s)
	s = html.UnescapeString(s)
	s = stripTags(s)
	return strings.Join(strings.Fields(s), " ")
}

// stripTags drops HTML elements, keeping their text content. Inline tags
// leave no residue: "micro<i>fluidic</i>" becomes "microfluidic".
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := xhtml.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
