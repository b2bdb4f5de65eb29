package placement

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingocert/placement-platform/internal/db/repository"
	"github.com/lingocert/placement-platform/internal/metrics"
	"github.com/lingocert/placement-platform/internal/placement/bank"
)

type memoryAttempts struct {
	store map[string]repository.Attempt
}

func newMemoryAttempts() *memoryAttempts {
	return &memoryAttempts{store: map[string]repository.Attempt{}}
}

func (m *memoryAttempts) key(userID uuid.UUID, step int) string {
	return fmt.Sprintf("%s:%d", userID, step)
}

func (m *memoryAttempts) Upsert(_ context.Context, a repository.Attempt) (repository.Attempt, error) {
	a.CompletedAt = time.Now().UTC()
	m.store[m.key(a.UserID, a.Step)] = a
	return a, nil
}

func (m *memoryAttempts) GetByUserAndStep(_ context.Context, userID uuid.UUID, step int) (repository.Attempt, error) {
	if a, ok := m.store[m.key(userID, step)]; ok {
		return a, nil
	}
	return repository.Attempt{}, repository.ErrNotFound
}

func (m *memoryAttempts) ListByUser(_ context.Context, userID uuid.UUID) ([]repository.Attempt, error) {
	var out []repository.Attempt
	for step := 1; step <= 3; step++ {
		if a, ok := m.store[m.key(userID, step)]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type memoryIssued struct {
	store map[string]IssuedSet
}

func newMemoryIssued() *memoryIssued {
	return &memoryIssued{store: map[string]IssuedSet{}}
}

func (m *memoryIssued) key(userID uuid.UUID, step Step) string {
	return fmt.Sprintf("%s:%d", userID, step)
}

func (m *memoryIssued) Get(_ context.Context, userID uuid.UUID, step Step) (*IssuedSet, error) {
	if set, ok := m.store[m.key(userID, step)]; ok {
		return &set, nil
	}
	return nil, nil
}

func (m *memoryIssued) Set(_ context.Context, userID uuid.UUID, step Step, set IssuedSet) error {
	m.store[m.key(userID, step)] = set
	return nil
}

func (m *memoryIssued) Invalidate(_ context.Context, userID uuid.UUID, step Step) error {
	delete(m.store, m.key(userID, step))
	return nil
}

type captureBroadcaster struct {
	summaries []ResultSummary
}

func (c *captureBroadcaster) BroadcastResult(summary ResultSummary) {
	c.summaries = append(c.summaries, summary)
}

func newTestService(t *testing.T) (*Service, *memoryAttempts, *captureBroadcaster) {
	t.Helper()
	b := bank.Default()
	attempts := newMemoryAttempts()
	broadcaster := &captureBroadcaster{}
	svc := NewService(b, NewSelector(b, noShuffle{}), newMemoryIssued(), attempts,
		metrics.NewPlacement(prometheus.NewRegistry()), broadcaster, zerolog.Nop())
	return svc, attempts, broadcaster
}

func answersFor(t *testing.T, views []QuestionView, correct bool) []Answer {
	t.Helper()
	b := bank.Default()

	answers := make([]Answer, 0, len(views))
	for _, v := range views {
		q, ok := b.ByID(v.ID)
		require.True(t, ok)
		option := q.CorrectAnswer
		if !correct {
			option = (q.CorrectAnswer + 1) % len(q.Options)
		}
		answers = append(answers, Answer{QuestionID: v.ID, SelectedOption: option, TimeSpent: 5 * time.Second})
	}
	return answers
}

func TestRequestQuestionsStripsCorrectAnswer(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := uuid.New()

	views, err := svc.RequestQuestions(context.Background(), userID, StepOne)
	require.NoError(t, err)
	require.Len(t, views, 44)
	for _, v := range views {
		assert.NotEmpty(t, v.Text)
		assert.Len(t, v.Options, 4)
	}
}

func TestSubmitAllCorrectAdvances(t *testing.T) {
	svc, attempts, broadcaster := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	views, err := svc.RequestQuestions(ctx, userID, StepOne)
	require.NoError(t, err)

	result, err := svc.SubmitAnswers(ctx, userID, StepOne, answersFor(t, views, true), 10*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, CertA2, result.CertificationLevel)
	assert.True(t, result.ProceedToNextStep)
	assert.Equal(t, 2, result.NextStep)

	stored, err := attempts.GetByUserAndStep(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Score)
	require.Len(t, stored.Answers, 44)
	for _, a := range stored.Answers {
		assert.True(t, a.IsCorrect)
		assert.Equal(t, int64(5000), a.TimeSpentMs)
	}

	require.Len(t, broadcaster.summaries, 1)
	assert.Equal(t, CertA2, broadcaster.summaries[0].CertificationLevel)
}

func TestSubmitNothingFails(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.RequestQuestions(ctx, userID, StepOne)
	require.NoError(t, err)

	result, err := svc.SubmitAnswers(ctx, userID, StepOne, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, CertFailed, result.CertificationLevel)
	assert.False(t, result.ProceedToNextStep)
	assert.Equal(t, 0, result.NextStep)
}

func TestStepTwoLockedUntilStepOnePassed(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.RequestQuestions(ctx, userID, StepTwo)
	assert.ErrorIs(t, err, ErrStepLocked)

	// A failed step 1 keeps step 2 locked.
	_, err = svc.RequestQuestions(ctx, userID, StepOne)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(ctx, userID, StepOne, nil, 0)
	require.NoError(t, err)

	_, err = svc.RequestQuestions(ctx, userID, StepTwo)
	assert.ErrorIs(t, err, ErrStepLocked)
}

func TestStepTwoMidRangeDoesNotAdvance(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	views, err := svc.RequestQuestions(ctx, userID, StepOne)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(ctx, userID, StepOne, answersFor(t, views, true), time.Minute)
	require.NoError(t, err)

	views, err = svc.RequestQuestions(ctx, userID, StepTwo)
	require.NoError(t, err)
	require.Len(t, views, 32)

	// 25 correct, 7 wrong: raw = 25 - 3.5 = 21.5, 21.5/32*100 = 67.2 -> 67.
	answers := answersFor(t, views, true)
	for i := 25; i < len(answers); i++ {
		q, ok := bank.Default().ByID(answers[i].QuestionID)
		require.True(t, ok)
		answers[i].SelectedOption = (q.CorrectAnswer + 1) % len(q.Options)
	}

	result, err := svc.SubmitAnswers(ctx, userID, StepTwo, answers, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, CertB2, result.CertificationLevel)
	assert.False(t, result.ProceedToNextStep)
	assert.Equal(t, 0, result.NextStep)
}

func TestSubmitWithoutIssuedSet(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SubmitAnswers(context.Background(), uuid.New(), StepOne, nil, 0)
	assert.ErrorIs(t, err, ErrNoIssuedQuestions)
}

func TestSubmitInvalidStep(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SubmitAnswers(context.Background(), uuid.New(), Step(7), nil, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestCurrentStatus(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	status, err := svc.CurrentStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, CertInProgress, status.CertificationLevel)
	assert.Equal(t, 1, status.UnlockedStep)
	assert.Empty(t, status.CompletedSteps)

	views, err := svc.RequestQuestions(ctx, userID, StepOne)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(ctx, userID, StepOne, answersFor(t, views, true), time.Minute)
	require.NoError(t, err)

	status, err = svc.CurrentStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, CertA2, status.CertificationLevel)
	assert.Equal(t, 2, status.UnlockedStep)
	assert.Equal(t, []int{1}, status.CompletedSteps)
}
