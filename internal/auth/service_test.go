package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingocert/placement-platform/internal/auth/jwt"
	"github.com/lingocert/placement-platform/internal/db/repository"
)

type stubUserStore struct {
	byEmail map[string]repository.User
	byID    map[uuid.UUID]repository.User
	logins  int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		byEmail: map[string]repository.User{},
		byID:    map[uuid.UUID]repository.User{},
	}
}

func (s *stubUserStore) Create(_ context.Context, u repository.User) (repository.User, error) {
	if _, exists := s.byEmail[u.Email]; exists {
		return repository.User{}, repository.ErrDuplicate
	}
	s.byEmail[u.Email] = u
	s.byID[u.ID] = u
	return u, nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (repository.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return repository.User{}, repository.ErrNotFound
}

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return repository.User{}, repository.ErrNotFound
}

func (s *stubUserStore) UpdateLogin(_ context.Context, _ uuid.UUID) error {
	s.logins++
	return nil
}

func newTestService() (*Service, *stubUserStore) {
	store := newStubUserStore()
	svc := NewService(store, ServiceOptions{
		TokenConfig: jwt.TokenConfig{
			AccessSecret:  []byte("test-secret"),
			RefreshSecret: []byte("test-secret-refresh"),
		},
	}, zerolog.Nop())
	return svc, store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	user, tokens, err := svc.Register(ctx, RegisterRequest{
		Email:       "learner@example.com",
		Password:    "correct horse",
		DisplayName: "Learner",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleLearner, user.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, RoleLearner, claims.Role)

	loggedIn, _, err := svc.Login(ctx, LoginRequest{Email: "learner@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, 1, store.logins)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "password1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "admin@example.com",
		Password: "password1",
		Role:     "root",
	})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "x@example.com", Password: "password1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "x@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, tokens, err := svc.Register(ctx, RegisterRequest{Email: "r@example.com", Password: "password1"})
	require.NoError(t, err)

	renewed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)

	// An access token is not a valid refresh token.
	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.Error(t, err)
}
