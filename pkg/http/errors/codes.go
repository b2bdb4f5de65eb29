package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeForbidden              = "forbidden"
	ErrCodeInvalidToken           = "invalid_token"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeAuthenticationRequired = "authentication_required"

	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeAlreadyExists = "already_exists"
	ErrCodeConflict      = "conflict"

	// Account errors
	ErrCodeRegistrationFailed = "registration_failed"
	ErrCodeLoginFailed        = "login_failed"
	ErrCodeEmailTaken         = "email_taken"

	// Placement errors
	ErrCodeInvalidStep       = "invalid_step"
	ErrCodeStepLocked        = "step_locked"
	ErrCodeStepCompleted     = "step_completed"
	ErrCodeNoIssuedQuestions = "no_issued_questions"
	ErrCodeSubmitFailed      = "submit_failed"
	ErrCodeAttemptNotFound   = "attempt_not_found"

	// WebSocket errors
	ErrCodeConnectionError = "connection_error"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
)
