package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// descriptionText flattens an HTML job description to plain text. Boards are
// split on this: some return markup, some plain strings; the record the engine
// carries is always text.
func descriptionText(s string) string {
	if !strings.Contains(s, "<") {
		return cleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return cleanText(s)
	}
	return cleanText(doc.Text())
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
