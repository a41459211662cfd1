package services

import (
	"path/filepath"
	"testing"

	"choreboard/internal/db"
	"choreboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db.NewRepositories(database)
}

func TestHashPasswordIsHexSHA256(t *testing.T) {
	digest := HashPassword("secret123")
	assert.Len(t, digest, 64)
	assert.Equal(t, HashPassword("secret123"), digest)
	assert.NotEqual(t, HashPassword("secret124"), digest)
}

func TestLoginRoundTrip(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	_, err := service.CreateSimple("Bob", "bob", "secret123")
	require.NoError(t, err)

	result, err := service.Login("bob", "secret123")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "bob", result.User.Login)

	result, err = service.Login("bob", "wrong")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.User)

	result, err = service.Login("nobody", "x")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not found")
}

func TestCreateSimpleRejectsDuplicateLogin(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	_, err := service.CreateSimple("Bob", "bob", "x")
	require.NoError(t, err)

	_, err = service.CreateSimple("Bobby", "bob", "y")
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestLoginExternalProvisionsOnce(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	result, err := service.LoginExternal("jane.doe@example.com")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "Jane Doe", result.User.Name)
	assert.Equal(t, models.AccountExternal, result.User.AccountKind)
	assert.Empty(t, result.User.PasswordHash)
	firstID := result.User.ID

	result, err = service.LoginExternal("jane.doe@example.com")
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, firstID, result.User.ID)

	users, err := repositories.Users.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoginExternalRejectsSimpleAccount(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	user, err := service.CreateSimple("Bob", "bob", "x")
	require.NoError(t, err)
	require.NoError(t, repositories.Users.UpdateByID(user.ID, map[string]any{"email": "bob@example.com"}))

	result, err := service.LoginExternal("bob@example.com")
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestLoginRejectsExternalAccount(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	_, err := service.CreateExternal("Ann", "ann@example.com")
	require.NoError(t, err)

	result, err := service.Login("ann@example.com", "anything")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "external")
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "Jane Doe", DisplayNameFromEmail("jane.doe@example.com"))
	assert.Equal(t, "Bob", DisplayNameFromEmail("bob@example.com"))
	assert.Equal(t, "Mary Jane Watson", DisplayNameFromEmail("MARY.jane.WATSON@example.com"))
	assert.Equal(t, "Solo", DisplayNameFromEmail("solo"))
}
