package domain

import "time"

// JobPosting is the stored shape of a scraped posting. The search core only
// reads it; the ingest pipeline and store own its lifecycle.
type JobPosting struct {
	ID          string
	URL         string
	Company     string
	Domain      string
	Source      string
	SourceType  string
	SourceName  string
	Title       string
	Location    string
	Description string
	Stacks      string // comma-joined, sorted
	Seniority   string
	WorkMode    string // remote/hybrid/onsite

	// Ingestion governance, carried but never interpreted by the core.
	Confidence       float64
	ParserVersion    string
	IngestionTraceID string

	CollectedAt *time.Time
	Active      bool
}

// Page is one slice of a ranked or listed result set. Total is the size of
// the whole set, not the slice.
type Page struct {
	Items []JobPosting `json:"items"`
	Page  int          `json:"page"`
	Size  int          `json:"size"`
	Total int          `json:"total"`
}
