package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedURL(t *testing.T) {
	assert.True(t, IsSupportedURL("https://acme.gupy.io/job/123"))
	assert.True(t, IsSupportedURL("http://boards.greenhouse.io/acme/jobs/1"))
	assert.True(t, IsSupportedURL("  https://example.com/x  "))

	assert.False(t, IsSupportedURL(""))
	assert.False(t, IsSupportedURL("ftp://example.com/file"))
	assert.False(t, IsSupportedURL("not a url"))
	assert.False(t, IsSupportedURL("/relative/path"))
	assert.False(t, IsSupportedURL("mailto:jobs@example.com"))
}

func TestCanonicalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"host and scheme lowered",
			"HTTPS://ACME.Gupy.IO/Job/123",
			"https://acme.gupy.io/Job/123",
		},
		{
			"fragment dropped",
			"https://example.com/jobs/1#apply",
			"https://example.com/jobs/1",
		},
		{
			"tracking params stripped",
			"https://example.com/jobs/1?utm_source=x&utm_medium=y&gclid=z&id=7",
			"https://example.com/jobs/1?id=7",
		},
		{
			"mailchimp and marketo params stripped",
			"https://example.com/j?mc_cid=a&mc_eid=b&mkt_tok=c",
			"https://example.com/j",
		},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalizeURL(tt.in))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "example.com", ExtractDomain("https://www.example.com/careers"))
	assert.Equal(t, "acme.gupy.io", ExtractDomain("https://acme.gupy.io/job/1"))
	assert.Equal(t, "unknown", ExtractDomain(""))
	assert.Equal(t, "unknown", ExtractDomain("/relative"))
}

func TestExtractCompany(t *testing.T) {
	// greenhouse carries the slug in the first path segment
	assert.Equal(t, "acme", ExtractCompany("https://boards.greenhouse.io/acme/jobs/1"))
	// gupy and friends carry it in the first host label
	assert.Equal(t, "acme", ExtractCompany("https://acme.gupy.io/job/1"))
	assert.Equal(t, "jobs", ExtractCompany("https://jobs.lever.co/acme/1"))
	assert.Equal(t, "unknown", ExtractCompany(""))
}

func TestExtractSource(t *testing.T) {
	assert.Equal(t, "gupy", ExtractSource("https://acme.gupy.io/job/1"))
	assert.Equal(t, "greenhouse", ExtractSource("https://boards.greenhouse.io/acme/jobs/1"))
	assert.Equal(t, "lever", ExtractSource("https://jobs.lever.co/acme/1"))
	assert.Equal(t, "workday", ExtractSource("https://acme.wd5.myworkdayjobs.com/x"))
	assert.Equal(t, "site", ExtractSource("https://careers.example.com/1"))
}
