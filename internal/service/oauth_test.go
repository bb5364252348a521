package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ShyneADL/recipe-app/config"
	"github.com/ShyneADL/recipe-app/internal/models"
)

func setupOAuth(t *testing.T) (*OAuthService, *AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	oauth := NewOAuthService(db, auth, &config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
	})
	return oauth, auth, db
}

func TestEnabledRequiresClientID(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	assert.False(t, NewOAuthService(db, auth, &config.Config{}).Enabled())
	assert.True(t, NewOAuthService(db, auth, &config.Config{GoogleClientID: "x"}).Enabled())
}

func TestAuthURLCarriesState(t *testing.T) {
	oauth, _, _ := setupOAuth(t)

	u := oauth.AuthURL("state-123")
	assert.Contains(t, u, "accounts.google.com")
	assert.Contains(t, u, "state=state-123")
	assert.Contains(t, u, "client_id=client-id")
}

func TestLoginOrCreateNewAccount(t *testing.T) {
	oauth, auth, _ := setupOAuth(t)

	token, user, err := oauth.LoginOrCreate(context.Background(), &GoogleUser{
		ID:    "google-1",
		Email: "ada@example.com",
		Name:  "Ada",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "google-1", user.GoogleID)

	current, err := auth.CurrentUser(token)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	// The random placeholder password can never be logged in with.
	_, _, loginErr := auth.Login("ada@example.com", "")
	assert.ErrorIs(t, loginErr, ErrInvalidCredentials)
}

func TestLoginOrCreateLinksByEmail(t *testing.T) {
	oauth, auth, _ := setupOAuth(t)

	_, registered, err := auth.Register("Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, linked, err := oauth.LoginOrCreate(context.Background(), &GoogleUser{
		ID:    "google-1",
		Email: "ada@example.com",
		Name:  "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, linked.ID)
	assert.Equal(t, "google-1", linked.GoogleID)

	// The password login still works after linking.
	_, _, loginErr := auth.Login("ada@example.com", "password123")
	assert.NoError(t, loginErr)
}

func TestLoginOrCreateIsIdempotent(t *testing.T) {
	oauth, _, db := setupOAuth(t)
	gu := &GoogleUser{ID: "google-1", Email: "ada@example.com", Name: "Ada"}

	_, first, err := oauth.LoginOrCreate(context.Background(), gu)
	require.NoError(t, err)
	_, second, err := oauth.LoginOrCreate(context.Background(), gu)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
