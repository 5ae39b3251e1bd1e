package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlockedIDs(states []BadgeState) []string {
	ids := []string{}
	for _, s := range states {
		if s.Unlocked {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func TestEvaluateBadgesFreshMember(t *testing.T) {
	states, next := EvaluateBadges(0, 0)

	require.Len(t, states, len(Catalog))
	assert.Empty(t, unlockedIDs(states))
	require.NotNil(t, next)
	assert.Equal(t, "start", next.ID)
}

func TestEvaluateBadgesThresholds(t *testing.T) {
	tests := []struct {
		name     string
		tasks    int
		days     int
		unlocked []string
		nextID   string
	}{
		{
			name:     "first day only",
			tasks:    3,
			days:     1,
			unlocked: []string{"start"},
			nextID:   "focus",
		},
		{
			name:     "five tasks unlocks focus",
			tasks:    5,
			days:     1,
			unlocked: []string{"start", "focus"},
			nextID:   "executor",
		},
		{
			name:     "mid challenge",
			tasks:    25,
			days:     7,
			unlocked: []string{"start", "focus", "executor", "momentum", "halfway", "imparavel"},
			nextID:   "reta_final",
		},
		{
			name:     "days without tasks unlock day badges only",
			tasks:    0,
			days:     15,
			unlocked: []string{"start", "momentum", "halfway", "reta_final", "fire_master"},
			nextID:   "focus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states, next := EvaluateBadges(tt.tasks, tt.days)
			assert.Equal(t, tt.unlocked, unlockedIDs(states))
			require.NotNil(t, next)
			assert.Equal(t, tt.nextID, next.ID)
		})
	}
}

func TestEvaluateBadgesEverythingUnlocked(t *testing.T) {
	states, next := EvaluateBadges(40, 15)

	for _, s := range states {
		assert.True(t, s.Unlocked, "badge %s should be unlocked", s.ID)
	}
	assert.Nil(t, next)
}

func TestCatalogIsStable(t *testing.T) {
	require.Len(t, Catalog, 9)
	assert.Equal(t, "start", Catalog[0].ID)
	assert.Equal(t, "fire_master", Catalog[len(Catalog)-1].ID)

	for _, badge := range Catalog {
		assert.NotEmpty(t, badge.Title)
		assert.Positive(t, badge.Threshold)
		assert.Contains(t, []Metric{MetricDays, MetricTasks}, badge.Metric)
	}
}
