package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-jobs/internal/domain"
)

func TestBuildPredicateEmptyCriteria(t *testing.T) {
	p := BuildPredicate(NewCriteria(), Default())
	assert.Empty(t, p.Groups)
}

func TestBuildPredicateStacksAreOneGroup(t *testing.T) {
	c := NewCriteria()
	c.Stacks["java"] = true
	c.Stacks["go"] = true

	p := BuildPredicate(c, Default())
	require.Len(t, p.Groups, 1)
	assert.Equal(t, []Match{
		{FieldStacks, "go"},
		{FieldStacks, "java"},
	}, p.Groups[0])
}

func TestBuildPredicateFreeTextTermsAreSeparateGroups(t *testing.T) {
	c := NewCriteria()
	c.FreeTextTerms["alpha"] = true
	c.FreeTextTerms["beta"] = true

	p := BuildPredicate(c, Default())
	require.Len(t, p.Groups, 2)
	for _, g := range p.Groups {
		require.Len(t, g, 4)
		fields := map[Field]bool{}
		for _, m := range g {
			fields[m.Field] = true
			assert.Equal(t, g[0].Term, m.Term)
		}
		assert.Equal(t, map[Field]bool{
			FieldTitle: true, FieldDescription: true,
			FieldCompany: true, FieldStacks: true,
		}, fields)
	}
	assert.Equal(t, "alpha", p.Groups[0][0].Term)
	assert.Equal(t, "beta", p.Groups[1][0].Term)
}

func TestBuildPredicateAreaExpandsToKeywordProbes(t *testing.T) {
	c := NewCriteria()
	c.Areas[domain.AreaData] = true

	p := BuildPredicate(c, Default())
	require.Len(t, p.Groups, 1)
	// "dados" and "data" each probe title and description
	assert.Equal(t, []Match{
		{FieldTitle, "dados"}, {FieldDescription, "dados"},
		{FieldTitle, "data"}, {FieldDescription, "data"},
	}, p.Groups[0])
}

func TestBuildPredicateGroupPerCriterion(t *testing.T) {
	c := NewCriteria()
	c.WorkModes[domain.WorkModeRemote] = true
	c.Seniorities[domain.SenioritySenior] = true
	c.Stacks["java"] = true
	c.Areas[domain.AreaBackend] = true
	c.LocationTerms["brasil"] = true
	c.FreeTextTerms["fintech"] = true
	c.FreeTextTerms["saude"] = true

	p := BuildPredicate(c, Default())
	assert.Len(t, p.Groups, 7)
}
