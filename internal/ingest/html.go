package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML flattens markup that bled through the crawler's extractor into a
// plain-text description. Plain text passes through untouched.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	return doc.Text()
}
