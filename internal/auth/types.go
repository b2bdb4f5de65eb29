package auth

import (
	"github.com/google/uuid"
)

// Roles an account can hold. Supervisors see the live results feed;
// learners take placement tests.
const (
	RoleLearner    = "learner"
	RoleSupervisor = "supervisor"
)

// User represents an authenticated account.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

// TokenPair holds access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RegisterRequest for email/password registration.
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

// LoginRequest for email/password authentication.
type LoginRequest struct {
	Email    string
	Password string
}
