package search

import (
	"strings"

	"hermes-jobs/internal/domain"
)

// Common Portuguese function words dropped from free text.
var stopWords = map[string]bool{
	"de": true, "da": true, "do": true, "das": true, "dos": true,
	"a": true, "o": true, "e": true, "para": true, "com": true,
	"em": true, "na": true, "no": true,
}

// Work-mode detection is deliberately looser than the rest of the parser:
// plain substring containment, not token membership.
var workModeLiterals = map[string]bool{
	"remote": true, "remoto": true,
	"hibrido": true, "hybrid": true,
	"onsite": true, "presencial": true,
}

// ParseQuery turns a raw query string into SearchCriteria against the
// catalog. The result is valid even when every set stays empty.
func ParseQuery(query string, cat *Catalog) SearchCriteria {
	normalized := NormalizeStrict(query)

	c := NewCriteria()
	c.RawText = normalized

	if strings.Contains(normalized, "remote") || strings.Contains(normalized, "remoto") {
		c.Remote = true
		c.WorkModes[domain.WorkModeRemote] = true
	}
	if strings.Contains(normalized, "hibrido") || strings.Contains(normalized, "hybrid") {
		c.WorkModes[domain.WorkModeHybrid] = true
	}
	if strings.Contains(normalized, "presencial") || strings.Contains(normalized, "onsite") || strings.Contains(normalized, "on-site") {
		c.WorkModes[domain.WorkModeOnsite] = true
	}

	tokens := map[string]bool{}
	var tokenOrder []string
	for _, t := range strings.Split(normalized, " ") {
		if t == "" {
			continue
		}
		if !tokens[t] {
			tokenOrder = append(tokenOrder, t)
		}
		tokens[t] = true
	}

	// Tokens consumed by a matched multi-word keyword must not leak into
	// free text.
	claimed := map[string]bool{}
	matches := func(keyword string) bool {
		kw := NormalizeStrict(keyword)
		if kw == "" {
			return false
		}
		if strings.Contains(kw, " ") {
			// Multi-word keywords can never survive token splitting, so
			// they match by substring containment instead.
			if strings.Contains(normalized, kw) {
				for _, part := range strings.Fields(kw) {
					claimed[part] = true
				}
				return true
			}
			return false
		}
		return tokens[kw]
	}

	for kw, tag := range cat.SeniorityMap() {
		if matches(kw) {
			c.Seniorities[tag] = true
		}
	}
	for kw, tag := range cat.AreaMap() {
		if matches(kw) {
			c.Areas[tag] = true
		}
	}
	for _, stack := range cat.Stacks() {
		if matches(stack) {
			if stack == "dotnet" {
				c.Stacks[".net"] = true
			} else {
				c.Stacks[stack] = true
			}
		}
	}
	for _, loc := range cat.Locations() {
		if matches(loc) {
			c.LocationTerms[loc] = true
		}
	}

	if c.LocationTerms["brasil"] || c.LocationTerms["brazil"] {
		c.Country = "brazil"
	}

	for _, token := range tokenOrder {
		if stopWords[token] || workModeLiterals[token] || claimed[token] {
			continue
		}
		if isCatalogKeyword(token, cat) {
			continue
		}
		c.FreeTextTerms[token] = true
	}

	return c
}

func isCatalogKeyword(token string, cat *Catalog) bool {
	if _, ok := cat.SeniorityMap()[token]; ok {
		return true
	}
	if _, ok := cat.AreaMap()[token]; ok {
		return true
	}
	for _, s := range cat.Stacks() {
		if s == token {
			return true
		}
	}
	for _, l := range cat.Locations() {
		if l == token {
			return true
		}
	}
	return false
}
