package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-jobs/internal/domain"
	"hermes-jobs/internal/search"
)

type memStore struct {
	byURL map[string]domain.JobPosting
}

func newMemStore() *memStore {
	return &memStore{byURL: map[string]domain.JobPosting{}}
}

func (m *memStore) GetByURL(_ context.Context, url string) (*domain.JobPosting, error) {
	p, ok := m.byURL[url]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memStore) UpsertPosting(_ context.Context, p domain.JobPosting) error {
	m.byURL[p.URL] = p
	return nil
}

func testImporter(st *memStore) *Importer {
	return New(st, search.NewClassifier(search.Default()), nil)
}

func floatPtr(v float64) *float64 { return &v }

func TestImportDocuments(t *testing.T) {
	st := newMemStore()
	im := testImporter(st)

	n, err := im.ImportDocuments(context.Background(), []Document{{
		URL:         "https://acme.gupy.io/job/123?utm_source=feed",
		Title:       "Senior Backend Engineer",
		Location:    "Remote - Brasil",
		Description: "<p>We run Java and Docker.</p> Email: apply@acme.io",
		Confidence:  floatPtr(1.5),
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, ok := st.byURL["https://acme.gupy.io/job/123"]
	require.True(t, ok, "stored under the canonical url")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "acme", p.Company)
	assert.Equal(t, "acme.gupy.io", p.Domain)
	assert.Equal(t, "gupy", p.Source)
	assert.Equal(t, 1.0, p.Confidence, "confidence clamped to [0,1]")

	// sanitized description: markup gone, form bleed-through truncated
	assert.Contains(t, p.Description, "We run Java and Docker.")
	assert.NotContains(t, p.Description, "<p>")
	assert.NotContains(t, p.Description, "apply@acme.io")

	// classification over title+location+description
	assert.Equal(t, "docker,java", p.Stacks)
	assert.Equal(t, "senior", p.Seniority)
	assert.Equal(t, "remote", p.WorkMode)

	// governance defaults
	assert.Equal(t, "gupy", p.SourceType)
	assert.Equal(t, "acme", p.SourceName)
	assert.Equal(t, "unknown", p.ParserVersion)
	assert.NotEmpty(t, p.IngestionTraceID)

	assert.True(t, p.Active)
	require.NotNil(t, p.CollectedAt)
}

func TestImportDocumentsSkipsInvalidURLs(t *testing.T) {
	st := newMemStore()
	im := testImporter(st)

	n, err := im.ImportDocuments(context.Background(), []Document{
		{URL: ""},
		{URL: "ftp://nope"},
		{URL: "https://ok.example.com/1", Title: "Dev"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, st.byURL, 1)
}

func TestImportDocumentsKeepsExistingID(t *testing.T) {
	st := newMemStore()
	im := testImporter(st)

	doc := Document{URL: "https://acme.gupy.io/job/1", Title: "Dev"}
	_, err := im.ImportDocuments(context.Background(), []Document{doc})
	require.NoError(t, err)
	first := st.byURL["https://acme.gupy.io/job/1"]

	doc.Title = "Senior Dev"
	_, err = im.ImportDocuments(context.Background(), []Document{doc})
	require.NoError(t, err)
	second := st.byURL["https://acme.gupy.io/job/1"]

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Senior Dev", second.Title)
}

func TestImportURLs(t *testing.T) {
	st := newMemStore()
	im := testImporter(st)

	n, err := im.ImportURLs(context.Background(), []string{
		"https://acme.gupy.io/job/1",
		"https://acme.gupy.io/job/1", // duplicate collapses
		"nonsense",
		"https://boards.greenhouse.io/acme/jobs/2",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	p := st.byURL["https://acme.gupy.io/job/1"]
	assert.Equal(t, "url-index", p.SourceType)
	assert.Equal(t, "acme.gupy.io", p.SourceName)
	assert.Equal(t, 0.5, p.Confidence)
	assert.Equal(t, "url-index-v1", p.ParserVersion)
	assert.NotEmpty(t, p.IngestionTraceID)
	assert.True(t, p.Active)
}

func TestImportURLsRefreshesExistingRow(t *testing.T) {
	st := newMemStore()
	im := testImporter(st)

	_, err := im.ImportDocuments(context.Background(), []Document{{
		URL:           "https://acme.gupy.io/job/1",
		Title:         "Dev",
		SourceType:    "crawler",
		ParserVersion: "v3",
	}})
	require.NoError(t, err)
	before := st.byURL["https://acme.gupy.io/job/1"]

	_, err = im.ImportURLs(context.Background(), []string{"https://acme.gupy.io/job/1"})
	require.NoError(t, err)
	after := st.byURL["https://acme.gupy.io/job/1"]

	// url-index never downgrades a full import
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "crawler", after.SourceType)
	assert.Equal(t, "v3", after.ParserVersion)
	assert.Equal(t, "Dev", after.Title)
	assert.True(t, after.CollectedAt.After(*before.CollectedAt) || after.CollectedAt.Equal(*before.CollectedAt))
}
