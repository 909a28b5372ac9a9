package newsapi

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// flattenText reduces a provider text field to plain text. NewsAPI-style
// feeds occasionally carry markup inside titles and descriptions; goquery
// strips the tags and we collapse the remaining whitespace.
func flattenText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return collapseSpaces(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return collapseSpaces(raw)
	}
	return collapseSpaces(doc.Text())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
