package placement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingocert/placement-platform/internal/auth/jwt"
)

func authedRequest(method, target, step string, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if step != "" {
		r.SetPathValue("step", step)
	}
	claims := &jwt.Claims{UserID: uuid.New()}
	return r.WithContext(context.WithValue(r.Context(), "claims", claims))
}

func TestGetQuestionsHTTP(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetQuestions(rec, authedRequest(http.MethodGet, "/v1/placement/steps/1/questions", "1", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Step      int            `json:"step"`
		Questions []QuestionView `json:"questions"`
		Count     int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, 44, resp.Count)
	require.Len(t, resp.Questions, 44)

	// The learner payload must never leak the correct answer.
	assert.NotContains(t, rec.Body.String(), "correctAnswer")
}

func TestGetQuestionsHTTPInvalidStep(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	for _, step := range []string{"0", "4", "abc"} {
		rec := httptest.NewRecorder()
		h.GetQuestions(rec, authedRequest(http.MethodGet, "/v1/placement/steps/"+step+"/questions", step, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "step %s", step)
	}
}

func TestGetQuestionsHTTPUnauthenticated(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	r := httptest.NewRequest(http.MethodGet, "/v1/placement/steps/1/questions", nil)
	r.SetPathValue("step", "1")
	rec := httptest.NewRecorder()
	h.GetQuestions(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitHTTPLockedStep(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Submit(rec, authedRequest(http.MethodPost, "/v1/placement/steps/2/submit", "2", `{"answers":[]}`))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "step_locked")
}

func TestSubmitHTTPWithoutIssuedSet(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Submit(rec, authedRequest(http.MethodPost, "/v1/placement/steps/1/submit", "1", `{"answers":[]}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_issued_questions")
}

func TestSubmitHTTPBadJSON(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Submit(rec, authedRequest(http.MethodPost, "/v1/placement/steps/1/submit", "1", `{`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
