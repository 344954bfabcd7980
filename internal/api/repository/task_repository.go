package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"tasktracker/internal/api/apperrors"
	"tasktracker/internal/api/models"
)

var taskTracer = otel.Tracer("repository.task")

// TaskRepository defines the interface for task storage. Every read and
// mutation is scoped by owner: a task that exists under a different owner is
// indistinguishable from one that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, owner, title, description string) (*models.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]models.Task, error)
	GetOwned(ctx context.Context, owner string, id int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, owner string, id int64) error
}

type sqliteTaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new SQLite-based TaskRepository.
func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &sqliteTaskRepository{db: db}
}

// Create persists a new task for owner. The id is assigned by the database
// and completed starts out false.
func (r *sqliteTaskRepository) Create(ctx context.Context, owner, title, description string) (*models.Task, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.Create")
	defer span.End()

	query := `INSERT INTO tasks (title, description, completed, owner) VALUES (?, ?, 0, ?)`
	res, err := r.db.ExecContext(ctx, query, title, description, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new task id: %w", err)
	}

	return &models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
		Owner:       owner,
	}, nil
}

// ListByOwner returns owner's tasks in insertion order.
func (r *sqliteTaskRepository) ListByOwner(ctx context.Context, owner string) ([]models.Task, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.ListByOwner")
	defer span.End()

	tasks := []models.Task{}
	query := `SELECT id, title, description, completed, owner FROM tasks WHERE owner = ? ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &tasks, query, owner); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetOwned is the single owner-scoped lookup every read and mutation path
// goes through. Absent and not-owned both surface as ErrNotFound.
func (r *sqliteTaskRepository) GetOwned(ctx context.Context, owner string, id int64) (*models.Task, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.GetOwned")
	span.SetAttributes(attribute.Int64("task.id", id))
	defer span.End()

	var task models.Task
	query := `SELECT id, title, description, completed, owner FROM tasks WHERE id = ? AND owner = ?`
	err := r.db.GetContext(ctx, &task, query, id, owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// Update replaces the mutable fields of task, matching on id and owner. Zero
// rows affected means the task vanished or changed hands since it was read.
func (r *sqliteTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.Update")
	span.SetAttributes(attribute.Int64("task.id", task.ID))
	defer span.End()

	query := `UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ? AND owner = ?`
	res, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.Completed, task.ID, task.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, apperrors.ErrNotFound
	}
	return task, nil
}

// Delete removes owner's task with the given id. No soft delete.
func (r *sqliteTaskRepository) Delete(ctx context.Context, owner string, id int64) error {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.Delete")
	span.SetAttributes(attribute.Int64("task.id", id))
	defer span.End()

	query := `DELETE FROM tasks WHERE id = ? AND owner = ?`
	res, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
