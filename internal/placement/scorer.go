package placement

import (
	"math"

	"github.com/lingocert/placement-platform/internal/placement/bank"
)

const (
	correctPoints     = 1.0
	incorrectPenalty  = 0.5
	unansweredPenalty = 0.5
)

// Scorer converts a learner's answer list into a 0-100 percentage score,
// penalizing both wrong and missing answers.
type Scorer struct {
	bank *bank.Bank
}

// NewScorer creates a scorer resolving correctness against the given bank.
func NewScorer(b *bank.Bank) *Scorer {
	return &Scorer{bank: b}
}

// Score computes the percentage for a submission of totalQuestions expected
// items. Unknown question ids are ignored for correctness but still count
// toward the unanswered penalty. A nil answer slice scores as all unanswered.
func (s *Scorer) Score(answers []Answer, totalQuestions int) int {
	n := totalQuestions
	if size := s.bank.Size(); n > size {
		n = size
	}
	if n <= 0 {
		return 0
	}

	raw := 0.0
	answered := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		q, ok := s.bank.ByID(a.QuestionID)
		if !ok {
			continue
		}
		answered[q.ID] = struct{}{}
		if a.SelectedOption == q.CorrectAnswer {
			raw += correctPoints
		} else {
			raw -= incorrectPenalty
		}
	}

	if missing := n - len(answered); missing > 0 {
		raw -= unansweredPenalty * float64(missing)
	}

	if raw < 0 {
		raw = 0
	}
	return int(math.Round(raw / float64(n) * 100))
}
