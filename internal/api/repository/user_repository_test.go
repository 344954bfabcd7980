package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/api/apperrors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "alice", "hashed-pw")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hashed-pw", got.PasswordHash)
}

func TestUserRepository_GetUnknownUserIsNil(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	got, err := repo.GetUserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateUsernameConflicts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "alice", "hash-one")
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, "alice", "hash-two")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserRepository_UsernamesAreCaseSensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "alice", "h1")
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, "Alice", "h2")
	require.NoError(t, err)

	got, err := repo.GetUserByUsername(ctx, "Alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "h2", got.PasswordHash)
}
