package placement

import (
	"math/rand"
	"time"

	"github.com/lingocert/placement-platform/internal/placement/bank"
)

const (
	questionsPerCompetency = 2
	maxQuestionsPerStep    = 44
)

// shuffler abstracts the random source so tests can substitute a seeded or
// no-op implementation. *rand.Rand satisfies it.
type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Selector produces the fixed-size, shuffled question set for a step.
type Selector struct {
	bank *bank.Bank
	rng  shuffler
}

// NewSelector creates a selector over the given bank. A nil rng falls back to
// a time-seeded source; presentation order is not security sensitive.
func NewSelector(b *bank.Bank, rng shuffler) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{bank: b, rng: rng}
}

// QuestionsForStep returns the shuffled question set for the step: two
// catalog-order items per competency that has at least two items at the
// step's levels. Competencies with fewer than two matches contribute nothing.
func (s *Selector) QuestionsForStep(step Step) ([]bank.Question, error) {
	levels, err := LevelsForStep(step)
	if err != nil {
		return nil, err
	}

	var selected []bank.Question
	for _, competency := range s.bank.Competencies() {
		matches := s.bank.FilterByCompetencyAndLevels(competency, levels)
		if len(matches) < questionsPerCompetency {
			continue
		}
		selected = append(selected, matches[:questionsPerCompetency]...)
	}
	if len(selected) > maxQuestionsPerStep {
		selected = selected[:maxQuestionsPerStep]
	}

	// Fisher-Yates; membership is unchanged, only presentation order.
	s.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return selected, nil
}
