package httpapi

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/domain"
	"hermes-jobs/internal/events"
	"hermes-jobs/internal/ingest"
	"hermes-jobs/internal/search"
)

// Searcher is the search core as the HTTP layer sees it. *search.Service
// satisfies it; tests inject fakes.
type Searcher interface {
	Search(ctx context.Context, query string, page, size int) (domain.Page, error)
	SearchByCriteria(ctx context.Context, c search.SearchCriteria, page, size int) (domain.Page, error)
	ParseQuery(query string) search.SearchCriteria
	Catalog() *search.Catalog
}

// Importer runs the ingest pipeline for the import endpoints.
type Importer interface {
	ImportDocuments(ctx context.Context, docs []ingest.Document) (int, error)
	ImportURLs(ctx context.Context, urls []string) (int, error)
}

// JobLister is the listing side of the store.
type JobLister interface {
	ListActive(ctx context.Context, offset, limit int) ([]domain.JobPosting, int, error)
	ListActiveByDomain(ctx context.Context, dom string, offset, limit int) ([]domain.JobPosting, int, error)
	ListActiveBySource(ctx context.Context, source string, offset, limit int) ([]domain.JobPosting, int, error)
	SearchCompany(ctx context.Context, q string, offset, limit int) ([]domain.JobPosting, int, error)
}

type Deps struct {
	Search   Searcher
	Importer Importer
	Jobs     JobLister

	Hub *events.Hub

	// Atomic store for live config reloads via PUT /config.
	CfgVal *atomic.Value // stores config.Config

	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Import endpoint protection.
	ImportLimiter *rate.Limiter
	ImportToken   func() (string, error) // nil disables auth
}
