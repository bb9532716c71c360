package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hyrahs/shopstore-api/app/models"
	"github.com/hyrahs/shopstore-api/app/repositories"
	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/pkg/auth"
)

// fakeUserStore is an in-memory UserStore keyed by normalized email.
type fakeUserStore struct {
	byEmail map[string]models.User
	byID    map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: map[string]models.User{},
		byID:    map[string]models.User{},
	}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	email := models.NormalizeEmail(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return repositories.ErrDuplicateKey
	}
	user.ID = primitive.NewObjectID()
	s.byEmail[email] = *user
	s.byID[user.ID.Hex()] = *user
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := s.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func newAuthService(store *fakeUserStore) (*services.AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	return services.NewAuthService(store, tokens), tokens
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	store := newFakeUserStore()
	svc, tokens := newAuthService(store)

	token, user, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)
	require.False(t, user.ID.IsZero())
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Empty(t, user.Password, "returned user must not carry the hash")

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestSignupStoresHashedPassword(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newAuthService(store)

	_, _, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	stored := store.byEmail["jane@example.com"]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestSignupDuplicateEmailAnyCasing(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newAuthService(store)

	_, _, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), "Imposter", "  JANE@Example.COM ", "hunter22")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc, tokens := newAuthService(store)

	_, created, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "Jane@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Empty(t, user.Password)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.Hex(), claims.UserID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newFakeUserStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newAuthService(store)

	_, _, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidPassword)
}

func TestProfile(t *testing.T) {
	store := newFakeUserStore()
	svc, _ := newAuthService(store)

	_, created, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	user, err := svc.Profile(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.Empty(t, user.Password)

	_, err = svc.Profile(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
