package search

import (
	"regexp"
	"strings"
)

var (
	applySpanEN = regexp.MustCompile(`(?i)apply(.*?)submit application`)
	applySpanPT = regexp.MustCompile(`(?i)candidatar a esta vaga(.*?)enviar inscrição`)

	// Form-field bleed-through: everything from the first label to the end
	// of the string is discarded, not just the label. Classification relies
	// on this, keep the unbounded tail.
	formLabels = regexp.MustCompile(`(?i)(nome|sobrenome|email|telefone|currículo|resume|cover letter).*`)

	menuPhrases = regexp.MustCompile(`(?i)back to jobs|voltar para vagas`)
)

// Clean strips ingestion boilerplate from a scraped description before it is
// classified or indexed. Empty in, empty out.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.Join(strings.Fields(raw), " ")

	// Only the first apply...submit bracketing pair is removed.
	text = removeFirst(text, applySpanEN)
	text = removeFirst(text, applySpanPT)

	text = formLabels.ReplaceAllString(text, "")
	text = menuPhrases.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

func removeFirst(text string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}
