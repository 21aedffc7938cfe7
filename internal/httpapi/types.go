package httpapi

import (
	"strings"
	"time"

	"hermes-jobs/internal/domain"
	"hermes-jobs/internal/ingest"
	"hermes-jobs/internal/search"
)

type JobResponse struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Company     string  `json:"company"`
	Domain      string  `json:"domain"`
	Source      string  `json:"source"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Stacks      string  `json:"stacks"`
	Seniority   string  `json:"seniority"`
	WorkMode    string  `json:"workMode"`
	Confidence  float64 `json:"confidence"`
	CollectedAt string  `json:"collectedAt"`
}

func toJobResponse(p domain.JobPosting) JobResponse {
	collected := ""
	if p.CollectedAt != nil {
		collected = p.CollectedAt.UTC().Format(time.RFC3339)
	}
	return JobResponse{
		ID:          p.ID,
		URL:         p.URL,
		Company:     p.Company,
		Domain:      p.Domain,
		Source:      p.Source,
		Title:       p.Title,
		Location:    p.Location,
		Description: p.Description,
		Stacks:      p.Stacks,
		Seniority:   p.Seniority,
		WorkMode:    p.WorkMode,
		Confidence:  p.Confidence,
		CollectedAt: collected,
	}
}

type PageResponse struct {
	Items []JobResponse `json:"items"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Total int           `json:"total"`
}

func toPageResponse(p domain.Page) PageResponse {
	items := make([]JobResponse, 0, len(p.Items))
	for _, j := range p.Items {
		items = append(items, toJobResponse(j))
	}
	return PageResponse{Items: items, Page: p.Page, Size: p.Size, Total: p.Total}
}

type SearchRequest struct {
	Query string `json:"query"`
}

// StructuredSearchRequest is the v2 wire shape; it translates onto the same
// SearchCriteria contract the free-text parser produces.
type StructuredSearchRequest struct {
	Stacks      []string `json:"stacks"`
	Seniorities []string `json:"seniorities"`
	Areas       []string `json:"areas"`
	WorkModes   []string `json:"workModes"`
	Language    string   `json:"language"`
	Framework   string   `json:"framework"`
	Keyword     string   `json:"keyword"`
	Location    string   `json:"location"`
}

func (r StructuredSearchRequest) toCriteria() (search.SearchCriteria, error) {
	c := search.NewCriteria()
	var rawParts []string

	addStack := func(s string) {
		s = search.NormalizeStrict(s)
		if s == "" {
			return
		}
		c.Stacks[s] = true
		rawParts = append(rawParts, s)
	}
	for _, s := range r.Stacks {
		addStack(s)
	}
	addStack(r.Language)
	addStack(r.Framework)

	for _, s := range r.Seniorities {
		tag, err := domain.ParseSeniority(s)
		if err != nil {
			return c, err
		}
		c.Seniorities[tag] = true
		rawParts = append(rawParts, string(tag))
	}

	for _, a := range r.Areas {
		tag, err := domain.ParseArea(a)
		if err != nil {
			return c, err
		}
		c.Areas[tag] = true
		rawParts = append(rawParts, string(tag))
	}

	for _, m := range r.WorkModes {
		m = search.NormalizeStrict(m)
		if m == "" {
			continue
		}
		c.WorkModes[m] = true
		if m == domain.WorkModeRemote {
			c.Remote = true
		}
		rawParts = append(rawParts, m)
	}

	if loc := search.NormalizeStrict(r.Location); loc != "" {
		c.LocationTerms[loc] = true
		rawParts = append(rawParts, loc)
		if loc == "brasil" || loc == "brazil" {
			c.Country = "brazil"
		}
	}

	// Keyword tokens already claimed by a structured set stay out of free
	// text so nothing is weighted twice.
	for _, token := range strings.Fields(search.NormalizeStrict(r.Keyword)) {
		if c.Stacks[token] || c.WorkModes[token] || c.LocationTerms[token] ||
			c.Seniorities[domain.Seniority(token)] || c.Areas[domain.Area(token)] {
			continue
		}
		c.FreeTextTerms[token] = true
		rawParts = append(rawParts, token)
	}

	c.RawText = strings.Join(rawParts, " ")
	return c, nil
}

type ImportDocumentsRequest struct {
	Jobs []ingest.Document `json:"jobs"`
}

type ImportURLsRequest struct {
	URLs []string `json:"urls"`
}

type SearchOptionsResponse struct {
	Seniorities []string `json:"seniorities"`
	Areas       []string `json:"areas"`
	WorkModes   []string `json:"workModes"`
	Stacks      []string `json:"stacks"`
	Locations   []string `json:"locations"`
}
