package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/api/apperrors"
)

func TestTaskRepository_CreateThenGet(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "buy milk", "two liters")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Completed)
	assert.Equal(t, "alice", created.Owner)

	got, err := repo.GetOwned(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Title)
	assert.Equal(t, "two liters", got.Description)
	assert.False(t, got.Completed)
}

func TestTaskRepository_ListIsOwnerScopedAndOrdered(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "alice", "first", "")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "alice", "second", "")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "bob's task", "")
	require.NoError(t, err)

	aliceTasks, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceTasks, 2)
	assert.Equal(t, first.ID, aliceTasks[0].ID)
	assert.Equal(t, second.ID, aliceTasks[1].ID)

	carolTasks, err := repo.ListByOwner(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, carolTasks)
}

func TestTaskRepository_GetHidesOtherOwnersTasks(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "alice", "secret plans", "")
	require.NoError(t, err)

	// Bob gets the same NotFound he would for a nonexistent id.
	_, err = repo.GetOwned(ctx, "bob", task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetOwned(ctx, "bob", 99999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTaskRepository_UpdatePersistsFields(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "alice", "draft", "old text")
	require.NoError(t, err)

	task.Title = "final"
	task.Description = "new text"
	task.Completed = true
	_, err = repo.Update(ctx, task)
	require.NoError(t, err)

	got, err := repo.GetOwned(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "new text", got.Description)
	assert.True(t, got.Completed)
}

func TestTaskRepository_UpdateByNonOwnerIsNotFound(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "alice", "alice's task", "")
	require.NoError(t, err)

	stolen := *task
	stolen.Owner = "bob"
	stolen.Title = "bob's now"
	_, err = repo.Update(ctx, &stolen)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Alice's record is untouched.
	got, err := repo.GetOwned(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice's task", got.Title)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "alice", "done soon", "")
	require.NoError(t, err)

	// A non-owner cannot delete it.
	err = repo.Delete(ctx, "bob", task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "alice", task.ID))

	_, err = repo.GetOwned(ctx, "alice", task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Delete(ctx, "alice", task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
