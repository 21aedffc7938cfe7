package ingest

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"hermes-jobs/internal/domain"
	"hermes-jobs/internal/events"
	"hermes-jobs/internal/search"
)

// Document is one scraped posting as delivered by the crawler.
type Document struct {
	URL              string   `json:"url"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	SourceType       string   `json:"sourceType"`
	SourceName       string   `json:"sourceName"`
	Confidence       *float64 `json:"confidence"`
	ParserVersion    string   `json:"parserVersion"`
	IngestionTraceID string   `json:"ingestionTraceId"`
}

// Store is the persistence the importer needs.
type Store interface {
	GetByURL(ctx context.Context, url string) (*domain.JobPosting, error)
	UpsertPosting(ctx context.Context, p domain.JobPosting) error
}

// Importer runs the import path: strip HTML, sanitize, classify, persist.
type Importer struct {
	store      Store
	classifier *search.Classifier
	hub        *events.Hub
}

func New(store Store, classifier *search.Classifier, hub *events.Hub) *Importer {
	return &Importer{store: store, classifier: classifier, hub: hub}
}

// ImportDocuments upserts a crawler batch. Invalid URLs are skipped, not
// fatal; the returned count is how many postings were written.
func (im *Importer) ImportDocuments(ctx context.Context, docs []Document) (int, error) {
	now := time.Now().UTC()
	imported := 0

	for _, doc := range docs {
		rawURL := strings.TrimSpace(doc.URL)
		if rawURL == "" || !IsSupportedURL(rawURL) {
			log.Printf("level=warn msg=\"import rejected\" reason=unsupported_url url=%q", rawURL)
			continue
		}
		url := CanonicalizeURL(rawURL)

		existing, err := im.store.GetByURL(ctx, url)
		if err != nil {
			return imported, err
		}

		var p domain.JobPosting
		if existing != nil {
			p = *existing
		} else {
			p.ID = uuid.NewString()
		}

		p.URL = url
		p.Company = ExtractCompany(url)
		p.Domain = ExtractDomain(url)
		p.Source = ExtractSource(url)
		p.SourceType = strings.TrimSpace(doc.SourceType)
		p.SourceName = strings.TrimSpace(doc.SourceName)
		p.Confidence = clampConfidence(doc.Confidence)
		p.ParserVersion = strings.TrimSpace(doc.ParserVersion)
		p.IngestionTraceID = strings.TrimSpace(doc.IngestionTraceID)
		p.Title = strings.TrimSpace(doc.Title)
		p.Location = strings.TrimSpace(doc.Location)

		clean := search.Clean(StripHTML(doc.Description))
		p.Description = clean

		result := im.classifier.Classify(p.Title + " " + p.Location + " " + clean)
		p.Stacks = strings.Join(result.Stacks, ",") // sorted by the classifier
		p.Seniority = result.Seniority
		p.WorkMode = result.WorkMode

		if p.SourceType == "" {
			p.SourceType = p.Source
		}
		if p.SourceName == "" {
			p.SourceName = p.Company
		}
		if p.ParserVersion == "" {
			p.ParserVersion = "unknown"
		}
		if p.IngestionTraceID == "" {
			p.IngestionTraceID = uuid.NewString()
		}

		collected := now
		p.CollectedAt = &collected
		p.Active = true

		if err := im.store.UpsertPosting(ctx, p); err != nil {
			return imported, err
		}
		imported++
		log.Printf("level=info msg=\"imported\" source=%s source_type=%s trace_id=%s", p.SourceName, p.SourceType, p.IngestionTraceID)
	}

	im.publishImported(imported)
	return imported, nil
}

// ImportURLs is the thin url-index path: it registers URLs before the
// crawler has fetched them, refreshing rows that already exist.
func (im *Importer) ImportURLs(ctx context.Context, urls []string) (int, error) {
	now := time.Now().UTC()
	imported := 0
	seen := map[string]bool{}

	for _, raw := range urls {
		rawURL := strings.TrimSpace(raw)
		if rawURL == "" || !IsSupportedURL(rawURL) {
			continue
		}
		url := CanonicalizeURL(rawURL)
		if seen[url] {
			continue
		}
		seen[url] = true

		existing, err := im.store.GetByURL(ctx, url)
		if err != nil {
			return imported, err
		}

		var p domain.JobPosting
		if existing != nil {
			p = *existing
		} else {
			p.ID = uuid.NewString()
			p.URL = url
			p.Company = ExtractCompany(url)
			p.Domain = ExtractDomain(url)
			p.Source = ExtractSource(url)
		}

		// Governance defaults only fill gaps; a later full import wins.
		if p.SourceType == "" {
			p.SourceType = "url-index"
		}
		if p.SourceName == "" {
			p.SourceName = p.Domain
		}
		if p.Confidence == 0 {
			p.Confidence = 0.5
		}
		if p.ParserVersion == "" {
			p.ParserVersion = "url-index-v1"
		}
		if p.IngestionTraceID == "" {
			p.IngestionTraceID = uuid.NewString()
		}

		collected := now
		p.CollectedAt = &collected
		p.Active = true

		if err := im.store.UpsertPosting(ctx, p); err != nil {
			return imported, err
		}
		imported++
	}

	im.publishImported(imported)
	return imported, nil
}

func (im *Importer) publishImported(count int) {
	if im.hub == nil || count == 0 {
		return
	}
	im.hub.Publish(events.MakeEvent("", "jobs_imported", 1, map[string]any{"count": count}))
}

func clampConfidence(v *float64) float64 {
	if v == nil {
		return 0
	}
	return math.Min(1, math.Max(0, *v))
}
