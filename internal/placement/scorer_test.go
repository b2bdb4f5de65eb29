package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingocert/placement-platform/internal/placement/bank"
)

func correctAnswers(t *testing.T, n int) []Answer {
	t.Helper()
	b := bank.Default()
	require.LessOrEqual(t, n, b.Size())

	answers := make([]Answer, 0, n)
	for _, q := range b.All()[:n] {
		answers = append(answers, Answer{QuestionID: q.ID, SelectedOption: q.CorrectAnswer})
	}
	return answers
}

func wrongAnswers(t *testing.T, n int) []Answer {
	t.Helper()
	b := bank.Default()
	require.LessOrEqual(t, n, b.Size())

	answers := make([]Answer, 0, n)
	for _, q := range b.All()[:n] {
		answers = append(answers, Answer{QuestionID: q.ID, SelectedOption: (q.CorrectAnswer + 1) % len(q.Options)})
	}
	return answers
}

func TestScoreAllCorrect(t *testing.T) {
	s := NewScorer(bank.Default())
	assert.Equal(t, 100, s.Score(correctAnswers(t, 44), 44))
}

func TestScoreAllWrongClampsToZero(t *testing.T) {
	s := NewScorer(bank.Default())
	assert.Equal(t, 0, s.Score(wrongAnswers(t, 44), 44))
}

func TestScoreNoAnswersClampsToZero(t *testing.T) {
	s := NewScorer(bank.Default())
	assert.Equal(t, 0, s.Score(nil, 44))
}

func TestScoreMixed(t *testing.T) {
	s := NewScorer(bank.Default())

	// 3 correct out of 4: raw = 3 - 0.5 = 2.5, 2.5/4*100 = 62.5 -> 63.
	answers := correctAnswers(t, 4)
	q, ok := bank.Default().ByID(answers[3].QuestionID)
	require.True(t, ok)
	answers[3].SelectedOption = (q.CorrectAnswer + 1) % len(q.Options)

	assert.Equal(t, 63, s.Score(answers, 4))
}

func TestScoreUnansweredPenalty(t *testing.T) {
	s := NewScorer(bank.Default())

	// 3 correct, 1 unanswered: same raw as 3 correct 1 wrong.
	answers := correctAnswers(t, 3)
	assert.Equal(t, 63, s.Score(answers, 4))
}

func TestScoreUnknownIDTreatedAsUnanswered(t *testing.T) {
	s := NewScorer(bank.Default())

	answers := correctAnswers(t, 3)
	answers = append(answers, Answer{QuestionID: "99-Z9", SelectedOption: 0})
	assert.Equal(t, 63, s.Score(answers, 4))
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer(bank.Default())

	inputs := [][]Answer{
		nil,
		correctAnswers(t, 44),
		wrongAnswers(t, 44),
		correctAnswers(t, 10),
		append(wrongAnswers(t, 20), correctAnswers(t, 5)...),
	}
	for i, answers := range inputs {
		got := s.Score(answers, 44)
		assert.GreaterOrEqual(t, got, 0, "case %d", i)
		assert.LessOrEqual(t, got, 100, "case %d", i)
	}
}

func TestScoreClampsTotalToBankSize(t *testing.T) {
	b := bank.Default()
	s := NewScorer(b)

	all := make([]Answer, 0, b.Size())
	for _, q := range b.All() {
		all = append(all, Answer{QuestionID: q.ID, SelectedOption: q.CorrectAnswer})
	}
	// A totalQuestions beyond the bank size clamps to the bank size.
	assert.Equal(t, 100, s.Score(all, b.Size()+500))
}

func TestScoreZeroTotal(t *testing.T) {
	s := NewScorer(bank.Default())
	assert.Equal(t, 0, s.Score(nil, 0))
	assert.Equal(t, 0, s.Score(nil, -3))
}

func TestScoreRoundsToNearest(t *testing.T) {
	s := NewScorer(bank.Default())

	// 7 correct, 1 wrong out of 8: raw = 6.5, 6.5/8*100 = 81.25 -> 81.
	answers := correctAnswers(t, 8)
	q, ok := bank.Default().ByID(answers[7].QuestionID)
	require.True(t, ok)
	answers[7].SelectedOption = (q.CorrectAnswer + 1) % len(q.Options)
	assert.Equal(t, 81, s.Score(answers, 8))
}
