package repository

import (
	"testing"

	"canteen-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser() *models.User {
	return &models.User{
		Name:         "John Student",
		Email:        "john@gmail.com",
		UserID:       "STU001",
		Role:         models.RoleStudent,
		PasswordHash: "$2a$10$notarealhash",
	}
}

func TestCreateUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser()
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newTestUser()))

	dup := newTestUser()
	dup.UserID = "STU002"
	err := repo.Create(dup)

	var dupErr *DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "email", dupErr.Field)
}

func TestCreateUserDuplicateUserID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newTestUser()))

	dup := newTestUser()
	dup.Email = "john2@gmail.com"
	err := repo.Create(dup)

	var dupErr *DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "user_id", dupErr.Field)
}

func TestGetByCredential(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newTestUser()))

	byEmail, err := repo.GetByCredential("john@gmail.com", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "STU001", byEmail.UserID)

	byID, err := repo.GetByCredential("STU001", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byID.ID)

	// Same credential under the wrong role must not match.
	_, err = repo.GetByCredential("STU001", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByUserID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(newTestUser()))

	user, err := repo.GetByUserID("STU001")
	require.NoError(t, err)
	assert.Equal(t, "john@gmail.com", user.Email)

	_, err = repo.GetByUserID("STU999")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
