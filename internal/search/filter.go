package search

import (
	"sort"

	"hermes-jobs/internal/domain"
)

// CandidateLimit bounds the candidate set fetched from the store before
// in-memory reranking. Cheap filter at the store, expensive scoring only over
// this window.
const CandidateLimit = 500

// Field names a stored posting column a Match tests against.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldCompany     Field = "company"
	FieldStacks      Field = "stacks"
	FieldSeniority   Field = "seniority"
	FieldWorkMode    Field = "work_mode"
	FieldLocation    Field = "location"
)

// Match is a case-insensitive substring-contains test on one field.
type Match struct {
	Field Field
	Term  string
}

// Predicate is what the storage collaborator executes: every group must
// hold, and a group holds when any of its matches does. The store always
// adds the active-only constraint itself.
type Predicate struct {
	Groups [][]Match
}

// BuildPredicate translates criteria into a storage predicate. Empty
// criterion sets contribute no group and so never narrow the candidate set.
func BuildPredicate(c SearchCriteria, cat *Catalog) Predicate {
	var p Predicate

	if len(c.WorkModes) > 0 {
		var g []Match
		for _, mode := range sortedTerms(c.WorkModes) {
			g = append(g, Match{FieldWorkMode, mode})
		}
		p.Groups = append(p.Groups, g)
	}

	if len(c.Seniorities) > 0 {
		var g []Match
		for _, tag := range sortedSeniorities(c.Seniorities) {
			g = append(g, Match{FieldSeniority, string(tag)})
		}
		p.Groups = append(p.Groups, g)
	}

	if len(c.Stacks) > 0 {
		var g []Match
		for _, stack := range sortedTerms(c.Stacks) {
			g = append(g, Match{FieldStacks, stack})
		}
		p.Groups = append(p.Groups, g)
	}

	// Areas have no stored column; they expand to keyword probes over title
	// and description.
	if len(c.Areas) > 0 {
		var g []Match
		for _, area := range sortedAreas(c.Areas) {
			for _, kw := range cat.AreaKeywords(area) {
				g = append(g, Match{FieldTitle, kw}, Match{FieldDescription, kw})
			}
		}
		p.Groups = append(p.Groups, g)
	}

	if len(c.LocationTerms) > 0 {
		var g []Match
		for _, term := range sortedTerms(c.LocationTerms) {
			g = append(g, Match{FieldLocation, term})
		}
		p.Groups = append(p.Groups, g)
	}

	// Free-text terms are ANDed together: each term gets its own group and
	// only needs to appear in one of the four fields.
	for _, term := range sortedTerms(c.FreeTextTerms) {
		p.Groups = append(p.Groups, []Match{
			{FieldTitle, term},
			{FieldDescription, term},
			{FieldCompany, term},
			{FieldStacks, term},
		})
	}

	return p
}

func sortedTerms(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func sortedSeniorities(set map[domain.Seniority]bool) []domain.Seniority {
	out := make([]domain.Seniority, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedAreas(set map[domain.Area]bool) []domain.Area {
	out := make([]domain.Area, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
