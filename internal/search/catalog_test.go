package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Equal(t, domain.SeniorityMid, cat.SeniorityMap()["pleno"])
	assert.Equal(t, domain.SenioritySenior, cat.SeniorityMap()["sr"])
	assert.Equal(t, domain.AreaSecurity, cat.AreaMap()["seguranca"])
	assert.Contains(t, cat.Stacks(), "golang")
	assert.Contains(t, cat.Stacks(), ".net")
	assert.Contains(t, cat.Locations(), "brasil")
}

func TestCatalogOverridesMergeOnTopOfDefaults(t *testing.T) {
	cat, err := NewCatalog(config.Synonyms{
		Seniority: map[string]string{"  Especialista ": "senior"},
		Area:      map[string]string{"sre": "devops", "qa": "security"},
		Stacks:    []string{"Elixir"},
		Locations: []string{"chile"},
	})
	require.NoError(t, err)

	// custom keys land normalized
	assert.Equal(t, domain.SenioritySenior, cat.SeniorityMap()["especialista"])
	assert.Equal(t, domain.AreaDevops, cat.AreaMap()["sre"])
	assert.Contains(t, cat.Stacks(), "elixir")
	assert.Contains(t, cat.Locations(), "chile")

	// a custom key overwrites the default with the same text
	assert.Equal(t, domain.AreaSecurity, cat.AreaMap()["qa"])

	// unrelated defaults survive
	assert.Equal(t, domain.SeniorityJunior, cat.SeniorityMap()["jr"])
	assert.Equal(t, domain.AreaBackend, cat.AreaMap()["backend"])
	assert.Contains(t, cat.Stacks(), "java")
}

func TestCatalogUnknownTagIsError(t *testing.T) {
	_, err := NewCatalog(config.Synonyms{
		Seniority: map[string]string{"guru": "wizard"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guru")

	_, err = NewCatalog(config.Synonyms{
		Area: map[string]string{"sre": "platform"},
	})
	require.Error(t, err)
}

func TestAreaKeywords(t *testing.T) {
	cat := Default()

	kws := cat.AreaKeywords(domain.AreaData)
	assert.ElementsMatch(t, []string{"dados", "data"}, kws)

	// falls back to the area name when nothing maps to it
	custom, err := NewCatalog(config.Synonyms{})
	require.NoError(t, err)
	delete(custom.area, "qa")
	assert.Equal(t, []string{"qa"}, custom.AreaKeywords(domain.AreaQA))
}
