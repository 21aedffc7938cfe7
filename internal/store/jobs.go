package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hermes-jobs/internal/domain"
	"hermes-jobs/internal/search"
)

const jobColumns = `id, url, company, domain, source, source_type, source_name,
confidence, parser_version, ingestion_trace_id,
title, location, description, stacks, seniority, work_mode,
collected_at, active`

// whitelist of predicate fields -> columns (prevents SQL injection via the
// predicate; terms themselves are always bound parameters)
var predicateColumns = map[search.Field]string{
	search.FieldTitle:       "title",
	search.FieldDescription: "description",
	search.FieldCompany:     "company",
	search.FieldStacks:      "stacks",
	search.FieldSeniority:   "seniority",
	search.FieldWorkMode:    "work_mode",
	search.FieldLocation:    "location",
}

// FindActiveMatching returns at most limit active postings matching the
// predicate, most recently collected first.
func (d *DB) FindActiveMatching(ctx context.Context, p search.Predicate, limit int) ([]domain.JobPosting, error) {
	where := []string{"active = 1"}
	var args []any

	for _, group := range p.Groups {
		var ors []string
		for _, m := range group {
			col, ok := predicateColumns[m.Field]
			if !ok {
				return nil, fmt.Errorf("predicate field %q not queryable", m.Field)
			}
			ors = append(ors, fmt.Sprintf("instr(lower(%s), ?) > 0", col))
			args = append(args, strings.ToLower(m.Term))
		}
		if len(ors) > 0 {
			where = append(where, "("+strings.Join(ors, " OR ")+")")
		}
	}

	query := fmt.Sprintf(`
SELECT %s
FROM jobs
WHERE %s
ORDER BY collected_at DESC
LIMIT ?;
`, jobColumns, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := d.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	defer rows.Close()

	return scanPostings(rows)
}

// ListActive is the no-criteria fallback: active postings by recency, paged,
// plus the total active count.
func (d *DB) ListActive(ctx context.Context, offset, limit int) ([]domain.JobPosting, int, error) {
	return d.listActiveWhere(ctx, "", nil, offset, limit)
}

func (d *DB) ListActiveByDomain(ctx context.Context, dom string, offset, limit int) ([]domain.JobPosting, int, error) {
	return d.listActiveWhere(ctx, "AND domain = ?", []any{dom}, offset, limit)
}

func (d *DB) ListActiveBySource(ctx context.Context, source string, offset, limit int) ([]domain.JobPosting, int, error) {
	return d.listActiveWhere(ctx, "AND source = ?", []any{source}, offset, limit)
}

// SearchCompany lists active postings whose company contains q, ignoring
// case.
func (d *DB) SearchCompany(ctx context.Context, q string, offset, limit int) ([]domain.JobPosting, int, error) {
	return d.listActiveWhere(ctx, "AND instr(lower(company), ?) > 0", []any{strings.ToLower(q)}, offset, limit)
}

func (d *DB) listActiveWhere(ctx context.Context, extra string, extraArgs []any, offset, limit int) ([]domain.JobPosting, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM jobs WHERE active = 1 %s;`, extra)
	if err := d.Pool.QueryRowContext(ctx, countQuery, extraArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count active: %w", err)
	}

	query := fmt.Sprintf(`
SELECT %s
FROM jobs
WHERE active = 1 %s
ORDER BY collected_at DESC
LIMIT ? OFFSET ?;
`, jobColumns, extra)
	args := append(append([]any{}, extraArgs...), limit, offset)

	rows, err := d.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list active: %w", err)
	}
	defer rows.Close()

	items, err := scanPostings(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByURL returns the posting stored under url, or nil when absent.
func (d *DB) GetByURL(ctx context.Context, url string) (*domain.JobPosting, error) {
	row := d.Pool.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM jobs WHERE url = ?;`, jobColumns), url)

	p, err := scanPosting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get by url: %w", err)
	}
	return &p, nil
}

// UpsertPosting inserts or fully replaces the row keyed by url.
func (d *DB) UpsertPosting(ctx context.Context, p domain.JobPosting) error {
	collected := ""
	if p.CollectedAt != nil {
		collected = p.CollectedAt.UTC().Format(time.RFC3339)
	}
	active := 0
	if p.Active {
		active = 1
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO jobs (id, url, company, domain, source, source_type, source_name,
                  confidence, parser_version, ingestion_trace_id,
                  title, location, description, stacks, seniority, work_mode,
                  collected_at, active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
  company = excluded.company,
  domain = excluded.domain,
  source = excluded.source,
  source_type = excluded.source_type,
  source_name = excluded.source_name,
  confidence = excluded.confidence,
  parser_version = excluded.parser_version,
  ingestion_trace_id = excluded.ingestion_trace_id,
  title = excluded.title,
  location = excluded.location,
  description = excluded.description,
  stacks = excluded.stacks,
  seniority = excluded.seniority,
  work_mode = excluded.work_mode,
  collected_at = excluded.collected_at,
  active = excluded.active;`,
		p.ID, p.URL, p.Company, p.Domain, p.Source, p.SourceType, p.SourceName,
		p.Confidence, p.ParserVersion, p.IngestionTraceID,
		p.Title, p.Location, p.Description, p.Stacks, p.Seniority, p.WorkMode,
		collected, active,
	)
	if err != nil {
		return fmt.Errorf("upsert posting: %w", err)
	}
	return nil
}

// DeactivateOlderThan flips postings last collected more than maxAgeDays ago
// to inactive, returning how many rows changed.
func (d *DB) DeactivateOlderThan(ctx context.Context, maxAgeDays int) (int64, error) {
	res, err := d.Pool.ExecContext(ctx, `
UPDATE jobs
SET active = 0
WHERE active = 1 AND collected_at < datetime('now', ?);
`, fmt.Sprintf("-%d days", maxAgeDays))
	if err != nil {
		return 0, fmt.Errorf("deactivate old postings: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(r rowScanner) (domain.JobPosting, error) {
	var p domain.JobPosting
	var collected string
	var active int

	err := r.Scan(
		&p.ID, &p.URL, &p.Company, &p.Domain, &p.Source, &p.SourceType, &p.SourceName,
		&p.Confidence, &p.ParserVersion, &p.IngestionTraceID,
		&p.Title, &p.Location, &p.Description, &p.Stacks, &p.Seniority, &p.WorkMode,
		&collected, &active,
	)
	if err != nil {
		return domain.JobPosting{}, err
	}

	if collected != "" {
		if t, err := time.Parse(time.RFC3339, collected); err == nil {
			p.CollectedAt = &t
		}
	}
	p.Active = active != 0
	return p, nil
}

func scanPostings(rows *sql.Rows) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
