package placement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lingocert/placement-platform/internal/db/repository"
	"github.com/lingocert/placement-platform/internal/metrics"
	"github.com/lingocert/placement-platform/internal/placement/bank"
)

var (
	// ErrStepLocked means the previous step has not been passed yet.
	ErrStepLocked = errors.New("previous step not passed")
	// ErrNoIssuedQuestions means a submission arrived without a prior
	// question request (or the test window expired).
	ErrNoIssuedQuestions = errors.New("no issued question set for step")
)

type attemptStore interface {
	Upsert(ctx context.Context, a repository.Attempt) (repository.Attempt, error)
	GetByUserAndStep(ctx context.Context, userID uuid.UUID, step int) (repository.Attempt, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]repository.Attempt, error)
}

// ResultSummary is the completed-attempt payload pushed to the supervisor feed.
type ResultSummary struct {
	UserID             uuid.UUID `json:"user_id"`
	Step               int       `json:"step"`
	Score              int       `json:"score"`
	CertificationLevel string    `json:"certification_level"`
	ProceedToNextStep  bool      `json:"proceed_to_next_step"`
	CompletedAt        time.Time `json:"completed_at"`
}

type resultBroadcaster interface {
	BroadcastResult(summary ResultSummary)
}

// QuestionView is the learner-facing projection of a question. It never
// carries the correct answer.
type QuestionView struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Options    []string   `json:"options"`
	Competency string     `json:"competency"`
	Level      bank.Level `json:"level"`
}

// SubmitResult is returned to the learner after scoring a step.
type SubmitResult struct {
	Step               int    `json:"step"`
	Score              int    `json:"score"`
	CertificationLevel string `json:"certification_level"`
	ProceedToNextStep  bool   `json:"proceed_to_next_step"`
	NextStep           int    `json:"next_step,omitempty"`
}

// Status summarizes a learner's progression through the step chain.
type Status struct {
	CertificationLevel string `json:"certification_level"`
	UnlockedStep       int    `json:"unlocked_step"`
	CompletedSteps     []int  `json:"completed_steps"`
}

// Service orchestrates the placement workflow: issue question sets, score
// submissions, certify, persist and broadcast outcomes.
type Service struct {
	bank        *bank.Bank
	selector    *Selector
	scorer      *Scorer
	cache       IssuedCache
	attempts    attemptStore
	metrics     *metrics.Placement
	broadcaster resultBroadcaster
	logger      zerolog.Logger
}

// NewService wires the placement service. metrics and broadcaster may be nil.
func NewService(b *bank.Bank, selector *Selector, cache IssuedCache, attempts attemptStore,
	m *metrics.Placement, broadcaster resultBroadcaster, logger zerolog.Logger) *Service {
	return &Service{
		bank:        b,
		selector:    selector,
		scorer:      NewScorer(b),
		cache:       cache,
		attempts:    attempts,
		metrics:     m,
		broadcaster: broadcaster,
		logger:      logger.With().Str("component", "placement_service").Logger(),
	}
}

// RequestQuestions issues the shuffled question set for a step, recording the
// issued ids so the later submission can be validated. Steps beyond the first
// are locked until the previous step's attempt carries the advance flag.
func (s *Service) RequestQuestions(ctx context.Context, userID uuid.UUID, step Step) ([]QuestionView, error) {
	if err := s.checkUnlocked(ctx, userID, step); err != nil {
		return nil, err
	}

	questions, err := s.selector.QuestionsForStep(step)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(questions))
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
		views[i] = QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Competency: q.Competency,
			Level:      q.Level,
		}
	}

	if err := s.cache.Set(ctx, userID, step, IssuedSet{QuestionIDs: ids, IssuedAt: time.Now().UTC()}); err != nil {
		return nil, fmt.Errorf("store issued set: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Int("step", int(step)).
		Int("count", len(views)).
		Msg("question set issued")

	return views, nil
}

// SubmitAnswers scores a submission against the issued set, certifies the
// result, persists the attempt and reports it.
func (s *Service) SubmitAnswers(ctx context.Context, userID uuid.UUID, step Step, answers []Answer, totalTime time.Duration) (SubmitResult, error) {
	if err := s.checkUnlocked(ctx, userID, step); err != nil {
		return SubmitResult{}, err
	}

	issued, err := s.cache.Get(ctx, userID, step)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("load issued set: %w", err)
	}
	if issued == nil {
		return SubmitResult{}, ErrNoIssuedQuestions
	}

	score := s.scorer.Score(answers, len(issued.QuestionIDs))
	outcome, err := Certify(step, score)
	if err != nil {
		return SubmitResult{}, err
	}

	attempt := repository.Attempt{
		ID:                 uuid.New(),
		UserID:             userID,
		Step:               int(step),
		Answers:            s.enrich(answers),
		Score:              score,
		CertificationLevel: outcome.Level,
		ProceedToNextStep:  outcome.ProceedToNextStep,
		TotalTime:          totalTime,
	}
	stored, err := s.attempts.Upsert(ctx, attempt)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("persist attempt: %w", err)
	}

	if err := s.cache.Invalidate(ctx, userID, step); err != nil {
		s.logger.Warn().Err(err).Msg("issued set invalidation failed")
	}

	if s.metrics != nil {
		s.metrics.ObserveAttempt(int(step), score, outcome.Level)
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastResult(ResultSummary{
			UserID:             userID,
			Step:               int(step),
			Score:              score,
			CertificationLevel: outcome.Level,
			ProceedToNextStep:  outcome.ProceedToNextStep,
			CompletedAt:        stored.CompletedAt,
		})
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Int("step", int(step)).
		Int("score", score).
		Str("level", outcome.Level).
		Bool("proceed", outcome.ProceedToNextStep).
		Msg("attempt recorded")

	return SubmitResult{
		Step:               int(step),
		Score:              score,
		CertificationLevel: outcome.Level,
		ProceedToNextStep:  outcome.ProceedToNextStep,
		NextStep:           int(NextStep(step, outcome)),
	}, nil
}

// Attempts returns the learner's stored attempts in step order.
func (s *Service) Attempts(ctx context.Context, userID uuid.UUID) ([]repository.Attempt, error) {
	return s.attempts.ListByUser(ctx, userID)
}

// CurrentStatus derives the learner's certification level and unlocked step
// from stored attempts.
func (s *Service) CurrentStatus(ctx context.Context, userID uuid.UUID) (Status, error) {
	attempts, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return Status{}, err
	}

	status := Status{CertificationLevel: CertInProgress, UnlockedStep: int(StepOne)}
	for _, a := range attempts {
		status.CompletedSteps = append(status.CompletedSteps, a.Step)
		status.CertificationLevel = a.CertificationLevel
		if a.ProceedToNextStep && a.Step < int(StepThree) {
			status.UnlockedStep = a.Step + 1
		}
	}
	return status, nil
}

// enrich resolves each answer against the bank, tagging correctness and
// timing. Answers with unknown ids are kept for audit but marked incorrect.
func (s *Service) enrich(answers []Answer) []repository.AttemptAnswer {
	out := make([]repository.AttemptAnswer, 0, len(answers))
	for _, a := range answers {
		stored := repository.AttemptAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			TimeSpentMs:    a.TimeSpent.Milliseconds(),
		}
		if q, ok := s.bank.ByID(a.QuestionID); ok {
			stored.IsCorrect = a.SelectedOption == q.CorrectAnswer
		}
		out = append(out, stored)
	}
	return out
}

func (s *Service) checkUnlocked(ctx context.Context, userID uuid.UUID, step Step) error {
	if _, err := LevelsForStep(step); err != nil {
		return err
	}
	if step == StepOne {
		return nil
	}
	prev, err := s.attempts.GetByUserAndStep(ctx, userID, int(step)-1)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStepLocked
		}
		return err
	}
	if !prev.ProceedToNextStep {
		return ErrStepLocked
	}
	return nil
}
