package search

import (
	"fmt"
	"sort"
	"strings"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/domain"
)

// Catalog is the merged default+override dictionary driving both query
// parsing and classification. Built once at startup and read-only afterward,
// so concurrent requests share it without locks.
type Catalog struct {
	seniority map[string]domain.Seniority
	area      map[string]domain.Area
	stacks    []string
	locations []string
}

var defaultSeniority = map[string]domain.Seniority{
	"estagio":    domain.SeniorityIntern,
	"estagiario": domain.SeniorityIntern,
	"intern":     domain.SeniorityIntern,
	"trainee":    domain.SeniorityTrainee,
	"junior":     domain.SeniorityJunior,
	"jr":         domain.SeniorityJunior,
	"pleno":      domain.SeniorityMid,
	"mid":        domain.SeniorityMid,
	"middle":     domain.SeniorityMid,
	"senior":     domain.SenioritySenior,
	"sr":         domain.SenioritySenior,
	"staff":      domain.SeniorityStaff,
	"lead":       domain.SeniorityLead,
	"principal":  domain.SeniorityPrincipal,
	"manager":    domain.SeniorityManager,
}

var defaultArea = map[string]domain.Area{
	"backend":    domain.AreaBackend,
	"frontend":   domain.AreaFrontend,
	"fullstack":  domain.AreaFullstack,
	"full-stack": domain.AreaFullstack,
	"mobile":     domain.AreaMobile,
	"dados":      domain.AreaData,
	"data":       domain.AreaData,
	"devops":     domain.AreaDevops,
	"qa":         domain.AreaQA,
	"security":   domain.AreaSecurity,
	"seguranca":  domain.AreaSecurity,
}

var defaultStacks = []string{
	"java", "spring", "kotlin",
	"python", "django", "flask", "fastapi",
	"node", "nodejs", "typescript", "javascript",
	"react", "angular", "vue", "next", "nestjs",
	"c#", ".net", "dotnet",
	"golang", "go",
	"php", "laravel",
	"ruby", "rails",
	"docker", "kubernetes", "terraform",
	"aws", "azure", "gcp",
	"sql", "postgres", "postgresql", "mysql", "mongodb", "redis",
	"html", "css", "sass", "tailwind",
	"android", "ios", "swift", "flutter", "react-native",
}

var defaultLocations = []string{
	"brasil", "brazil", "portugal", "europe", "latam",
	"usa", "canada", "argentina", "mexico",
}

// NewCatalog merges operator overrides on top of the built-in tables. A
// custom key overwrites a default key with the same text but leaves unrelated
// defaults alone. An override value that does not name a known tag is a
// configuration error; callers treat it as fatal at startup.
func NewCatalog(ov config.Synonyms) (*Catalog, error) {
	c := &Catalog{
		seniority: make(map[string]domain.Seniority, len(defaultSeniority)+len(ov.Seniority)),
		area:      make(map[string]domain.Area, len(defaultArea)+len(ov.Area)),
	}

	for k, v := range defaultSeniority {
		c.seniority[k] = v
	}
	for k, v := range ov.Seniority {
		tag, err := domain.ParseSeniority(v)
		if err != nil {
			return nil, fmt.Errorf("synonyms.seniority[%q]: %w", k, err)
		}
		c.seniority[normalizeKey(k)] = tag
	}

	for k, v := range defaultArea {
		c.area[k] = v
	}
	for k, v := range ov.Area {
		tag, err := domain.ParseArea(v)
		if err != nil {
			return nil, fmt.Errorf("synonyms.area[%q]: %w", k, err)
		}
		c.area[normalizeKey(k)] = tag
	}

	c.stacks = mergeTerms(defaultStacks, ov.Stacks)
	c.locations = mergeTerms(defaultLocations, ov.Locations)

	return c, nil
}

// Default is the catalog with no overrides, used by tests and as the startup
// fallback.
func Default() *Catalog {
	c, err := NewCatalog(config.Synonyms{})
	if err != nil {
		panic(err) // defaults are static; cannot fail
	}
	return c
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func mergeTerms(defaults, extra []string) []string {
	seen := make(map[string]bool, len(defaults)+len(extra))
	out := make([]string, 0, len(defaults)+len(extra))
	for _, list := range [][]string{defaults, extra} {
		for _, t := range list {
			t = normalizeKey(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Accessors return internal state; callers must treat it as read-only.

func (c *Catalog) SeniorityMap() map[string]domain.Seniority { return c.seniority }
func (c *Catalog) AreaMap() map[string]domain.Area           { return c.area }
func (c *Catalog) Stacks() []string                          { return c.stacks }
func (c *Catalog) Locations() []string                       { return c.locations }

// AreaKeywords lists the catalog keywords that resolve to the given area,
// falling back to the area's own name when no mapping exists.
func (c *Catalog) AreaKeywords(a domain.Area) []string {
	var kws []string
	for k, v := range c.area {
		if v == a {
			kws = append(kws, k)
		}
	}
	if len(kws) == 0 {
		return []string{string(a)}
	}
	sort.Strings(kws)
	return kws
}
