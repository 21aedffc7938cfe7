package search

import (
	"context"
	"math"
	"strings"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/domain"
)

// Store is the storage collaborator the service needs: a bounded
// recency-ordered candidate fetch and a plain paged active listing.
type Store interface {
	FindActiveMatching(ctx context.Context, p Predicate, limit int) ([]domain.JobPosting, error)
	ListActive(ctx context.Context, offset, limit int) ([]domain.JobPosting, int, error)
}

const defaultPageSize = 20

// Service is the single stable contract behind every API version: parse,
// filter, rank, paginate. Versioned HTTP adapters translate wire formats
// onto it instead of duplicating any of the logic.
type Service struct {
	store      Store
	catalog    *Catalog
	classifier *Classifier
	ranker     *Ranker
}

func NewService(store Store, cat *Catalog, weights config.Ranking) *Service {
	return &Service{
		store:      store,
		catalog:    cat,
		classifier: NewClassifier(cat),
		ranker:     NewRanker(weights),
	}
}

func (s *Service) Catalog() *Catalog { return s.catalog }

func (s *Service) ParseQuery(query string) SearchCriteria {
	return ParseQuery(query, s.catalog)
}

func (s *Service) Classify(text string) ClassificationResult {
	return s.classifier.Classify(text)
}

func (s *Service) Sanitize(text string) string {
	return Clean(text)
}

// Search parses the free-text query and runs the criteria search.
func (s *Service) Search(ctx context.Context, query string, page, size int) (domain.Page, error) {
	return s.SearchByCriteria(ctx, s.ParseQuery(query), page, size)
}

// SearchByCriteria runs the two-phase search: bounded store filter, then
// in-memory rank and slice. A blank query skips both and returns the plain
// recency-ordered active listing.
func (s *Service) SearchByCriteria(ctx context.Context, c SearchCriteria, page, size int) (domain.Page, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	// Keep page*size from overflowing into a negative offset; any page this
	// large is past the end of every result set anyway.
	if page > math.MaxInt/size {
		page = math.MaxInt / size
	}

	if strings.TrimSpace(c.RawText) == "" {
		items, total, err := s.store.ListActive(ctx, page*size, size)
		if err != nil {
			return domain.Page{}, err
		}
		return domain.Page{Items: items, Page: page, Size: size, Total: total}, nil
	}

	candidates, err := s.store.FindActiveMatching(ctx, BuildPredicate(c, s.catalog), CandidateLimit)
	if err != nil {
		return domain.Page{}, err
	}

	ranked := s.ranker.Rank(candidates, c)

	start := page * size
	if start >= len(ranked) {
		// Past the end: empty page, true total.
		return domain.Page{Items: []domain.JobPosting{}, Page: page, Size: size, Total: len(ranked)}, nil
	}
	end := min(start+size, len(ranked))

	return domain.Page{Items: ranked[start:end], Page: page, Size: size, Total: len(ranked)}, nil
}
