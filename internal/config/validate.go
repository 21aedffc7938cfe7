package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus anything an operator
// should fix. Catalog override values are checked later, when the synonym
// catalog is built; that failure is fatal at startup.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Search.Synonyms.Stacks = trimList(out.Search.Synonyms.Stacks)
	out.Search.Synonyms.Locations = trimList(out.Search.Synonyms.Locations)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	r := out.Search.Ranking
	for name, w := range map[string]float64{
		"weight_heuristic":        r.WeightHeuristic,
		"weight_title_hits":       r.WeightTitleHits,
		"weight_description_hits": r.WeightDescriptionHits,
		"weight_stack_hits":       r.WeightStackHits,
		"weight_seniority_match":  r.WeightSeniorityMatch,
		"weight_freshness_days":   r.WeightFreshnessDays,
	} {
		if w < 0 {
			res.addErr("search.ranking.%s must be >= 0", name)
		}
	}

	if out.Import.RequestsPerSecond <= 0 {
		res.addErr("import.requests_per_second must be > 0")
	}
	if out.Import.Burst <= 0 {
		res.addErr("import.burst must be > 0")
	}
	if strings.TrimSpace(out.Import.TokenAccount) == "" {
		res.addWarn("import.token_account is empty; the import endpoint will accept unauthenticated requests.")
	}

	if out.Cleanup.IntervalHours <= 0 {
		res.addErr("cleanup.interval_hours must be > 0")
	}
	if out.Cleanup.MaxAgeDays < 7 {
		res.addWarn("cleanup.max_age_days is very low (%d); postings may disappear while still fresh.", out.Cleanup.MaxAgeDays)
	}

	return out, res
}
