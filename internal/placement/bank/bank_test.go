package bank

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	b := Default()
	require.Equal(t, 22, len(b.Competencies()))

	compIndex := make(map[string]int, len(competencies))
	for i, c := range competencies {
		compIndex[c] = i + 1
	}

	seen := make(map[string]bool)
	for _, q := range b.All() {
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true

		require.Len(t, q.Options, 4, "question %s", q.ID)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0, "question %s", q.ID)
		assert.Less(t, q.CorrectAnswer, len(q.Options), "question %s", q.ID)
		assert.NotEmpty(t, q.Text, "question %s", q.ID)

		idx, ok := compIndex[q.Competency]
		require.True(t, ok, "question %s has unknown competency %q", q.ID, q.Competency)
		assert.Equal(t, fmt.Sprintf("%d-%s", idx, q.Level), q.ID)
	}
}

func TestCatalogLevelCoverage(t *testing.T) {
	b := Default()

	// Every competency carries exactly one item per A1 and A2.
	for _, comp := range b.Competencies() {
		matches := b.FilterByCompetencyAndLevels(comp, []Level{LevelA1, LevelA2})
		assert.Len(t, matches, 2, "competency %s", comp)
	}
}

func TestByID(t *testing.T) {
	b := Default()

	q, ok := b.ByID("3-B1")
	require.True(t, ok)
	assert.Equal(t, "Family and Relationships", q.Competency)
	assert.Equal(t, LevelB1, q.Level)

	_, ok = b.ByID("99-Z9")
	assert.False(t, ok)
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	b := Default()

	matches := b.FilterByCompetencyAndLevels("Past Tenses", []Level{LevelC1, LevelC2})
	require.Len(t, matches, 2)
	assert.True(t, strings.HasSuffix(matches[0].ID, "-C1"))
	assert.True(t, strings.HasSuffix(matches[1].ID, "-C2"))
}

func TestFilterUnknownCompetency(t *testing.T) {
	b := Default()
	assert.Empty(t, b.FilterByCompetencyAndLevels("Quantum Mechanics", []Level{LevelA1}))
}
