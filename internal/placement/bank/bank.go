package bank

import (
	"sync"
)

// Level is a CEFR proficiency tier used to tag catalog items.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Question is an immutable catalog entry. CorrectAnswer indexes into Options
// and must never be serialized to learner-facing responses.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer,omitempty"`
	Competency    string   `json:"competency"`
	Level         Level    `json:"level"`
}

// Bank holds the fixed question catalog with an id index built once at load.
type Bank struct {
	questions []Question
	byID      map[string]Question
}

var (
	defaultBank *Bank
	defaultOnce sync.Once
)

// Default returns the process-wide bank backed by the built-in catalog.
func Default() *Bank {
	defaultOnce.Do(func() {
		defaultBank = New(catalog)
	})
	return defaultBank
}

// New builds a bank from the given questions, indexing them by id.
func New(questions []Question) *Bank {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Bank{questions: questions, byID: byID}
}

// ByID looks up a single question. Absence is not an error.
func (b *Bank) ByID(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// FilterByCompetencyAndLevels returns catalog-order questions matching the
// competency whose level is in the given set.
func (b *Bank) FilterByCompetencyAndLevels(competency string, levels []Level) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Competency != competency {
			continue
		}
		for _, lvl := range levels {
			if q.Level == lvl {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// All returns the catalog in insertion order. Callers must not mutate it.
func (b *Bank) All() []Question {
	return b.questions
}

// Size reports the number of catalog items.
func (b *Bank) Size() int {
	return len(b.questions)
}

// Competencies returns the fixed competency categories in catalog order.
func (b *Bank) Competencies() []string {
	return competencies
}
