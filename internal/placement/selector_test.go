package placement

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingocert/placement-platform/internal/placement/bank"
)

// noShuffle keeps the selection in catalog order for deterministic assertions.
type noShuffle struct{}

func (noShuffle) Shuffle(n int, swap func(i, j int)) {}

func TestQuestionsForStepCardinality(t *testing.T) {
	b := bank.Default()
	s := NewSelector(b, noShuffle{})

	for _, step := range []Step{StepOne, StepTwo, StepThree} {
		levels, err := LevelsForStep(step)
		require.NoError(t, err)

		eligible := 0
		for _, comp := range b.Competencies() {
			if len(b.FilterByCompetencyAndLevels(comp, levels)) >= 2 {
				eligible++
			}
		}

		questions, err := s.QuestionsForStep(step)
		require.NoError(t, err)
		assert.Equal(t, eligible*2, len(questions), "step %d", step)
		assert.LessOrEqual(t, len(questions), 44, "step %d", step)
	}
}

func TestQuestionsForStepOneIsFull(t *testing.T) {
	s := NewSelector(bank.Default(), noShuffle{})

	questions, err := s.QuestionsForStep(StepOne)
	require.NoError(t, err)
	assert.Len(t, questions, 44)
}

func TestQuestionsForStepLevelRestriction(t *testing.T) {
	s := NewSelector(bank.Default(), noShuffle{})

	cases := map[Step][]bank.Level{
		StepOne:   {bank.LevelA1, bank.LevelA2},
		StepTwo:   {bank.LevelB1, bank.LevelB2},
		StepThree: {bank.LevelC1, bank.LevelC2},
	}
	for step, levels := range cases {
		questions, err := s.QuestionsForStep(step)
		require.NoError(t, err)
		for _, q := range questions {
			assert.Contains(t, levels, q.Level, "step %d question %s", step, q.ID)
		}
	}
}

func TestShuffleInvariance(t *testing.T) {
	b := bank.Default()
	ordered, err := NewSelector(b, noShuffle{}).QuestionsForStep(StepOne)
	require.NoError(t, err)

	shuffled, err := NewSelector(b, rand.New(rand.NewSource(1))).QuestionsForStep(StepOne)
	require.NoError(t, err)

	assert.ElementsMatch(t, ids(ordered), ids(shuffled))
}

func TestQuestionsForStepInvalid(t *testing.T) {
	s := NewSelector(bank.Default(), noShuffle{})

	for _, step := range []Step{0, 4, -1} {
		_, err := s.QuestionsForStep(step)
		assert.ErrorIs(t, err, ErrInvalidStep, "step %d", step)
	}
}

func ids(questions []bank.Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	sort.Strings(out)
	return out
}
