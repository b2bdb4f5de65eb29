package placement

import (
	"errors"
	"time"

	"github.com/lingocert/placement-platform/internal/placement/bank"
)

// Step is one of the three sequential assessment phases, each covering two
// adjacent CEFR levels.
type Step int

const (
	StepOne   Step = 1
	StepTwo   Step = 2
	StepThree Step = 3
)

// ErrInvalidStep is returned when a caller passes a step outside {1,2,3}.
var ErrInvalidStep = errors.New("invalid placement step")

// Certification labels assigned to a completed step's score. InProgress is
// the default status before any test is submitted; the transition table never
// emits it.
const (
	CertFailed     = "Failed"
	CertInProgress = "In Progress"
	CertA1         = "A1"
	CertA2         = "A2"
	CertB1         = "B1"
	CertB2         = "B2"
	CertC1         = "C1"
	CertC2         = "C2"
)

// Answer is a learner's response to a single question.
type Answer struct {
	QuestionID     string        `json:"question_id"`
	SelectedOption int           `json:"selected_option"`
	TimeSpent      time.Duration `json:"time_spent,omitempty"`
}

// Outcome is the certification decision for a (step, score) pair.
type Outcome struct {
	Level             string `json:"certification_level"`
	ProceedToNextStep bool   `json:"proceed_to_next_step"`
}

// LevelsForStep maps a step to the pair of CEFR levels it assesses.
func LevelsForStep(step Step) ([]bank.Level, error) {
	switch step {
	case StepOne:
		return []bank.Level{bank.LevelA1, bank.LevelA2}, nil
	case StepTwo:
		return []bank.Level{bank.LevelB1, bank.LevelB2}, nil
	case StepThree:
		return []bank.Level{bank.LevelC1, bank.LevelC2}, nil
	default:
		return nil, ErrInvalidStep
	}
}
