package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/domain"
)

func TestParseQueryFullExample(t *testing.T) {
	c := ParseQuery("Backend Java Remoto Sênior", Default())

	assert.Equal(t, map[string]bool{"java": true}, c.Stacks)
	assert.Equal(t, map[domain.Area]bool{domain.AreaBackend: true}, c.Areas)
	assert.Equal(t, map[domain.Seniority]bool{domain.SenioritySenior: true}, c.Seniorities)
	assert.Equal(t, map[string]bool{domain.WorkModeRemote: true}, c.WorkModes)
	assert.True(t, c.Remote)
	assert.Empty(t, c.FreeTextTerms)
	assert.Equal(t, "backend java remoto senior", c.RawText)
}

func TestParseQueryDotnetAlias(t *testing.T) {
	c := ParseQuery("dotnet developer", Default())

	assert.True(t, c.Stacks[".net"])
	assert.False(t, c.Stacks["dotnet"])
	assert.Equal(t, map[string]bool{"developer": true}, c.FreeTextTerms)
}

func TestParseQueryStopWords(t *testing.T) {
	c := ParseQuery("vaga de java para empresa", Default())

	assert.True(t, c.Stacks["java"])
	assert.Equal(t, map[string]bool{"vaga": true, "empresa": true}, c.FreeTextTerms)
}

func TestParseQueryCountry(t *testing.T) {
	c := ParseQuery("java brasil", Default())
	assert.True(t, c.LocationTerms["brasil"])
	assert.Equal(t, "brazil", c.Country)

	c = ParseQuery("java portugal", Default())
	assert.True(t, c.LocationTerms["portugal"])
	assert.Empty(t, c.Country)
}

func TestParseQueryWorkModes(t *testing.T) {
	c := ParseQuery("hibrido ou presencial", Default())
	assert.True(t, c.WorkModes[domain.WorkModeHybrid])
	assert.True(t, c.WorkModes[domain.WorkModeOnsite])
	assert.False(t, c.WorkModes[domain.WorkModeRemote])
	assert.False(t, c.Remote)

	c = ParseQuery("100% remote", Default())
	assert.True(t, c.Remote)
	assert.True(t, c.WorkModes[domain.WorkModeRemote])
}

func TestParseQueryCustomSynonyms(t *testing.T) {
	cat, err := NewCatalog(config.Synonyms{
		Area:   map[string]string{"sre": "devops"},
		Stacks: []string{"machine learning"},
	})
	require.NoError(t, err)

	c := ParseQuery("sre machine learning engineer", cat)

	assert.True(t, c.Areas[domain.AreaDevops])
	assert.True(t, c.Stacks["machine learning"])
	// tokens claimed by the multi-word stack stay out of free text
	assert.Equal(t, map[string]bool{"engineer": true}, c.FreeTextTerms)
}

func TestParseQueryFreeTextNeverOverlapsCatalogHits(t *testing.T) {
	c := ParseQuery("senior golang backend remoto brasil consultoria", Default())

	for term := range c.FreeTextTerms {
		assert.False(t, c.Stacks[term], "stack leaked into free text: %s", term)
		assert.NotContains(t, c.LocationTerms, term)
	}
	assert.Equal(t, map[string]bool{"consultoria": true}, c.FreeTextTerms)
}

func TestParseQueryBlank(t *testing.T) {
	c := ParseQuery("   \t ", Default())
	assert.Empty(t, c.RawText)
	assert.True(t, c.HasNoCriteria())
}
