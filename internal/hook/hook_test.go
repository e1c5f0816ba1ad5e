package hook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/types"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestSelect_FundingBeatsSharedCity(t *testing.T) {
	// A funding event from last week and a headquarters in the advisor's
	// home city: the funding hook must win.
	profile := &types.CompanyProfile{
		DisplayName: "Blue Ridge Piping",
		Location:    "Asheville, NC",
		RecentEvents: []types.RecentEvent{
			{Type: "funding", Description: "Blue Ridge Piping raised a growth round on August 18, 2026", Date: datePtr(2026, time.August, 18), RecencyRank: 1},
		},
	}

	h := Select(profile)

	assert.Equal(t, types.HookRecent, h.Type)
	assert.Contains(t, h.Text, "funding")
	assert.NotContains(t, h.Text, "Asheville")
	assert.False(t, h.Fallback)
}

func TestSelect_SkipsBoilerplateEvents(t *testing.T) {
	profile := &types.CompanyProfile{
		Location: "Denver, CO",
		RecentEvents: []types.RecentEvent{
			{Type: "award", Description: "Recognized as an industry leading trusted partner in 2026", Date: datePtr(2026, time.July, 1), RecencyRank: 1},
		},
	}

	h := Select(profile)

	assert.Equal(t, types.HookRelevant, h.Type)
	assert.Contains(t, h.Text, "Denver, CO")
}

func TestSelect_PrefersBestRankedSpecificEvent(t *testing.T) {
	profile := &types.CompanyProfile{
		RecentEvents: []types.RecentEvent{
			{Type: "award", Description: "Won a world class customer satisfaction award in June 2026", Date: datePtr(2026, time.June, 1), RecencyRank: 1},
			{Type: "launch", Description: "Launched a new HDPE fusion service line in April 2026", Date: datePtr(2026, time.April, 10), RecencyRank: 2},
		},
	}

	h := Select(profile)

	assert.Equal(t, types.HookRecent, h.Type)
	assert.Contains(t, h.Text, "HDPE fusion")
}

func TestSelect_GenericFallbackIsTagged(t *testing.T) {
	profile := &types.CompanyProfile{
		IndustryTags: []string{"Industrial Distribution"},
	}

	h := Select(profile)

	assert.Equal(t, types.HookRelevant, h.Type)
	assert.True(t, h.Fallback)
	assert.Contains(t, h.Text, "Industrial Distribution")
	assert.NotEmpty(t, h.Text)
}

func TestSelect_NeverEmpty(t *testing.T) {
	h := Select(&types.CompanyProfile{})
	assert.NotEmpty(t, h.Text)
	assert.True(t, h.Fallback)
}

func TestTopTwo_TwoEvents(t *testing.T) {
	profile := &types.CompanyProfile{
		RecentEvents: []types.RecentEvent{
			{Type: "funding", Description: "Raised a growth investment in August 2026 led by a family office", Date: datePtr(2026, time.August, 18), RecencyRank: 1},
			{Type: "launch", Description: "Launched a new distribution center in Charlotte in May 2026", Date: datePtr(2026, time.May, 2), RecencyRank: 2},
		},
	}

	primary, secondary, ok := TopTwo(profile)

	require.True(t, ok)
	assert.Contains(t, primary.Text, "funding")
	assert.Contains(t, secondary.Text, "launch")
	assert.NotEqual(t, primary.Text, secondary.Text)
}

func TestTopTwo_SingleFallbackCandidate(t *testing.T) {
	primary, secondary, ok := TopTwo(&types.CompanyProfile{})

	assert.False(t, ok)
	assert.Equal(t, primary, secondary)
}

func TestTopTwo_LocationThenFallback(t *testing.T) {
	profile := &types.CompanyProfile{
		Location:     "Tulsa, OK",
		IndustryTags: []string{"HVAC Services"},
	}

	primary, secondary, ok := TopTwo(profile)

	require.True(t, ok)
	assert.Contains(t, primary.Text, "Tulsa")
	assert.True(t, secondary.Fallback)
}
