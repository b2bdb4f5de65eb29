package placement

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lingocert/placement-platform/internal/auth/jwt"
	httperrors "github.com/lingocert/placement-platform/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for placement operations.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for placement endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "placement_http").Logger(),
	}
}

type submitRequest struct {
	Answers []struct {
		QuestionID     string `json:"question_id"`
		SelectedOption int    `json:"selected_option"`
		TimeSpentMs    int64  `json:"time_spent_ms"`
	} `json:"answers"`
	TotalTimeMs int64 `json:"total_time_ms"`
}

// GetQuestions handles GET /v1/placement/steps/{step}/questions
func (h *HTTPHandlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := r.Context().Value("claims").(*jwt.Claims)
	if !ok || claims == nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return
	}

	step, ok := h.parseStep(w, r)
	if !ok {
		return
	}

	questions, err := h.service.RequestQuestions(r.Context(), claims.UserID, step)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"step":      int(step),
		"questions": questions,
		"count":     len(questions),
	})
}

// Submit handles POST /v1/placement/steps/{step}/submit
func (h *HTTPHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := r.Context().Value("claims").(*jwt.Claims)
	if !ok || claims == nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return
	}

	step, ok := h.parseStep(w, r)
	if !ok {
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	answers := make([]Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, Answer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			TimeSpent:      time.Duration(a.TimeSpentMs) * time.Millisecond,
		})
	}

	result, err := h.service.SubmitAnswers(r.Context(), claims.UserID, step, answers,
		time.Duration(req.TotalTimeMs)*time.Millisecond)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	writeJSON(w, result)
}

// ListAttempts handles GET /v1/placement/attempts
func (h *HTTPHandlers) ListAttempts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := r.Context().Value("claims").(*jwt.Claims)
	if !ok || claims == nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return
	}

	attempts, err := h.service.Attempts(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	type attemptView struct {
		Step               int       `json:"step"`
		Score              int       `json:"score"`
		CertificationLevel string    `json:"certification_level"`
		ProceedToNextStep  bool      `json:"proceed_to_next_step"`
		TotalTimeMs        int64     `json:"total_time_ms"`
		CompletedAt        time.Time `json:"completed_at"`
	}
	views := make([]attemptView, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, attemptView{
			Step:               a.Step,
			Score:              a.Score,
			CertificationLevel: a.CertificationLevel,
			ProceedToNextStep:  a.ProceedToNextStep,
			TotalTimeMs:        a.TotalTime.Milliseconds(),
			CompletedAt:        a.CompletedAt,
		})
	}

	writeJSON(w, map[string]interface{}{"attempts": views})
}

// GetStatus handles GET /v1/placement/status
func (h *HTTPHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := r.Context().Value("claims").(*jwt.Claims)
	if !ok || claims == nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return
	}

	status, err := h.service.CurrentStatus(r.Context(), claims.UserID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	writeJSON(w, status)
}

func (h *HTTPHandlers) parseStep(w http.ResponseWriter, r *http.Request) (Step, bool) {
	raw := r.PathValue("step")
	n, err := strconv.Atoi(raw)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidStep, "Step must be 1, 2 or 3")
		return 0, false
	}
	step := Step(n)
	if _, err := LevelsForStep(step); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidStep, "Step must be 1, 2 or 3")
		return 0, false
	}
	return step, true
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidStep):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidStep, "Step must be 1, 2 or 3")
	case errors.Is(err, ErrStepLocked):
		httperrors.RespondForbidden(w, httperrors.ErrCodeStepLocked, "Previous step has not been passed")
	case errors.Is(err, ErrNoIssuedQuestions):
		httperrors.RespondError(w, http.StatusConflict, httperrors.ErrCodeNoIssuedQuestions, "Request the question set before submitting")
	default:
		h.logger.Error().Err(err).Msg("placement operation failed")
		httperrors.RespondInternalError(w, "Something went wrong")
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
