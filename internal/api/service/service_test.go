package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tasktracker/internal/api/repository"
	"tasktracker/internal/auth"
	"tasktracker/internal/db"
)

// newServices wires real repositories over a throwaway SQLite database.
func newServices(t *testing.T) (UserService, TaskService) {
	t.Helper()

	pool, err := db.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	tokens := auth.NewTokenManager([]byte("test-secret"), 30*time.Minute)
	return NewUserService(repository.NewUserRepository(pool), tokens),
		NewTaskService(repository.NewTaskRepository(pool))
}
