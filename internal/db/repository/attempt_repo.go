package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AttemptAnswer is a single stored answer, enriched with correctness at
// submission time so reports never need the bank again.
type AttemptAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption int    `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
	TimeSpentMs    int64  `json:"time_spent_ms,omitempty"`
}

// Attempt is a persisted placement test record, keyed (user_id, step).
type Attempt struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Step               int
	Answers            []AttemptAnswer
	Score              int
	CertificationLevel string
	ProceedToNextStep  bool
	TotalTime          time.Duration
	CompletedAt        time.Time
}

// AttemptRepository persists placement attempts.
type AttemptRepository struct {
	db DBTX
}

// NewAttemptRepository wraps a pgx connection pool for attempt operations.
func NewAttemptRepository(db DBTX) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Upsert stores an attempt, replacing any previous record for the same
// (user, step). Retakes overwrite; history beyond the latest is not kept.
func (r *AttemptRepository) Upsert(ctx context.Context, a Attempt) (Attempt, error) {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return Attempt{}, fmt.Errorf("encode answers: %w", err)
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO placement_attempts
			(id, user_id, step, answers, score, certification_level, proceed_to_next_step, total_time_ms, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (user_id, step) DO UPDATE SET
			answers = EXCLUDED.answers,
			score = EXCLUDED.score,
			certification_level = EXCLUDED.certification_level,
			proceed_to_next_step = EXCLUDED.proceed_to_next_step,
			total_time_ms = EXCLUDED.total_time_ms,
			completed_at = now()
		RETURNING id, user_id, step, answers, score, certification_level, proceed_to_next_step, total_time_ms, completed_at`,
		a.ID, a.UserID, a.Step, answers, a.Score, a.CertificationLevel, a.ProceedToNextStep, a.TotalTime.Milliseconds())
	return scanAttempt(row)
}

// GetByUserAndStep fetches the stored attempt for one step.
func (r *AttemptRepository) GetByUserAndStep(ctx context.Context, userID uuid.UUID, step int) (Attempt, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, step, answers, score, certification_level, proceed_to_next_step, total_time_ms, completed_at
		FROM placement_attempts WHERE user_id = $1 AND step = $2`, userID, step)
	a, err := scanAttempt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Attempt{}, ErrNotFound
	}
	return a, err
}

// ListByUser returns a learner's attempts in step order.
func (r *AttemptRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Attempt, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, step, answers, score, certification_level, proceed_to_next_step, total_time_ms, completed_at
		FROM placement_attempts WHERE user_id = $1 ORDER BY step`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func scanAttempt(row pgx.Row) (Attempt, error) {
	var (
		a       Attempt
		answers []byte
		totalMs int64
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.Step, &answers, &a.Score, &a.CertificationLevel,
		&a.ProceedToNextStep, &totalMs, &a.CompletedAt); err != nil {
		return Attempt{}, err
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &a.Answers); err != nil {
			return Attempt{}, fmt.Errorf("decode answers: %w", err)
		}
	}
	a.TotalTime = time.Duration(totalMs) * time.Millisecond
	return a, nil
}
