package search

import "hermes-jobs/internal/domain"

// SearchCriteria is the structured form of a user query. Built once per
// request and never mutated afterward. A token in FreeTextTerms is never
// also present in any of the other sets, so nothing gets weighted twice.
type SearchCriteria struct {
	Stacks        map[string]bool
	Seniorities   map[domain.Seniority]bool
	Areas         map[domain.Area]bool
	WorkModes     map[string]bool
	LocationTerms map[string]bool
	FreeTextTerms map[string]bool

	Remote  bool
	Country string

	// RawText is the strict-normalized query; blank means "no-op search"
	// and the service falls back to the plain recency listing.
	RawText string
}

func NewCriteria() SearchCriteria {
	return SearchCriteria{
		Stacks:        map[string]bool{},
		Seniorities:   map[domain.Seniority]bool{},
		Areas:         map[domain.Area]bool{},
		WorkModes:     map[string]bool{},
		LocationTerms: map[string]bool{},
		FreeTextTerms: map[string]bool{},
	}
}

// HasNoCriteria reports whether every criterion set is empty, i.e. an
// all-wildcard query.
func (c SearchCriteria) HasNoCriteria() bool {
	return len(c.Stacks) == 0 &&
		len(c.Seniorities) == 0 &&
		len(c.Areas) == 0 &&
		len(c.WorkModes) == 0 &&
		len(c.LocationTerms) == 0 &&
		len(c.FreeTextTerms) == 0
}
