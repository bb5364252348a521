package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShyneADL/recipe-app/internal/models"
	"github.com/ShyneADL/recipe-app/internal/service"
	"github.com/ShyneADL/recipe-app/internal/testdb"
)

// Exercises the account flow against real PostgreSQL, catching
// dialect differences the in-memory suite can't (unique index
// enforcement, uuid column handling).
func TestAuthServiceAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	td := testdb.Setup(t)
	svc := service.NewAuthService(td.DB, td.Config.JWTSecret)

	token, user, err := svc.Register("Ada", "ada@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)

	current, err := svc.CurrentUser(token)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	_, _, err = svc.Register("Twin", "ada@example.com", "password456")
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	// The unique index holds at the database level too.
	dup := models.User{Name: "Raw", Email: "ada@example.com", PasswordHash: "x"}
	assert.Error(t, td.DB.Create(&dup).Error)

	_, logged, err := svc.Login("ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}
