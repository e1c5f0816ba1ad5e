package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/taxonomy"
	"github.com/jonathan/outreach-agent/internal/types"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	tax, err := taxonomy.Load()
	require.NoError(t, err)
	return New(tax)
}

func TestMatch_Exact(t *testing.T) {
	m := newTestMatcher(t)
	caps := &types.AdvisorCapabilities{
		IndustriesServed: []string{"Industrial Distribution"},
		PastDeals: []types.PastDeal{
			{Industry: "Industrial Distribution", Description: "sale of a regional distributor"},
		},
	}
	profile := &types.CompanyProfile{IndustryTags: []string{"Industrial Distribution"}}

	result := m.Match(caps, profile)

	assert.True(t, result.Matched)
	assert.Equal(t, types.MatchExact, result.Confidence)
	assert.Equal(t, "Industrial Distribution", result.MatchedTag)
	require.NotNil(t, result.Evidence)
	assert.Contains(t, result.Evidence.Description, "regional distributor")
}

func TestMatch_AdjacentForNicheTag(t *testing.T) {
	// Company tagged only with a niche term; advisor has a past deal one
	// taxonomy level removed.
	m := newTestMatcher(t)
	caps := &types.AdvisorCapabilities{
		PastDeals: []types.PastDeal{
			{Industry: "Industrial Distribution", Description: "sale of a pipe and fittings distributor"},
		},
	}
	profile := &types.CompanyProfile{IndustryTags: []string{"Thermoplastic Piping Distribution"}}

	result := m.Match(caps, profile)

	assert.True(t, result.Matched)
	assert.Equal(t, types.MatchAdjacent, result.Confidence)
	assert.Equal(t, "Thermoplastic Piping Distribution", result.MatchedTag)
	assert.Equal(t, "Industrial Distribution", result.AdvisorTerm)
	require.NotNil(t, result.Evidence)
}

func TestMatch_MostSpecificTagWins(t *testing.T) {
	m := newTestMatcher(t)
	caps := &types.AdvisorCapabilities{
		IndustriesServed: []string{"Thermoplastic Piping Distribution", "B2B Services"},
	}
	profile := &types.CompanyProfile{
		IndustryTags: []string{"Thermoplastic Piping Distribution", "Industrial Distribution", "B2B Services"},
	}

	result := m.Match(caps, profile)

	assert.Equal(t, types.MatchExact, result.Confidence)
	assert.Equal(t, "Thermoplastic Piping Distribution", result.MatchedTag)
}

func TestMatch_ExactOnBroaderTagBeatsAdjacent(t *testing.T) {
	// All tags are tried for an exact match before any adjacency hop.
	m := newTestMatcher(t)
	caps := &types.AdvisorCapabilities{
		IndustriesServed: []string{"Industrial Distribution"},
	}
	profile := &types.CompanyProfile{
		IndustryTags: []string{"Thermoplastic Piping Distribution", "Industrial Distribution"},
	}

	result := m.Match(caps, profile)

	assert.Equal(t, types.MatchExact, result.Confidence)
	assert.Equal(t, "Industrial Distribution", result.MatchedTag)
}

func TestMatch_NoMatch(t *testing.T) {
	m := newTestMatcher(t)
	caps := &types.AdvisorCapabilities{
		IndustriesServed: []string{"Healthcare Services"},
	}
	profile := &types.CompanyProfile{IndustryTags: []string{"Marketing Agency"}}

	result := m.Match(caps, profile)

	assert.False(t, result.Matched)
	assert.Equal(t, types.MatchNone, result.Confidence)
	assert.Nil(t, result.Evidence)
}

func TestMatch_CaseInsensitiveAdvisorTerms(t *testing.T) {
	m := newTestMatcher(t)
	caps := &types.AdvisorCapabilities{
		IndustriesServed: []string{"industrial distribution"},
	}
	profile := &types.CompanyProfile{IndustryTags: []string{"Industrial Distribution"}}

	result := m.Match(caps, profile)
	assert.Equal(t, types.MatchExact, result.Confidence)
}

func TestMatch_EmptyTags(t *testing.T) {
	m := newTestMatcher(t)
	result := m.Match(&types.AdvisorCapabilities{}, &types.CompanyProfile{})
	assert.Equal(t, types.MatchNone, result.Confidence)
}
