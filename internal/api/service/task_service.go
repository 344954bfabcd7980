package service

import (
	"context"

	"tasktracker/internal/api/models"
	"tasktracker/internal/api/repository"
	"tasktracker/internal/validator"
)

// TaskService defines the interface for owner-scoped task operations. The
// owner argument always comes from the resolved request identity, never from
// the request body.
type TaskService interface {
	Create(ctx context.Context, owner string, req *models.CreateTaskRequest) (*models.Task, error)
	List(ctx context.Context, owner string) ([]models.Task, error)
	Get(ctx context.Context, owner string, id int64) (*models.Task, error)
	Update(ctx context.Context, owner string, id int64, req *models.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, owner string, id int64) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// Create persists a new task owned by owner, ignoring any owner value the
// client may have supplied.
func (s *taskService) Create(ctx context.Context, owner string, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := validator.GetValidator().Struct(req); err != nil {
		return nil, err
	}
	return s.taskRepo.Create(ctx, owner, req.Title, req.Description)
}

// List returns owner's tasks in insertion order.
func (s *taskService) List(ctx context.Context, owner string) ([]models.Task, error) {
	return s.taskRepo.ListByOwner(ctx, owner)
}

// Get returns owner's task with the given id, or apperrors.ErrNotFound.
func (s *taskService) Get(ctx context.Context, owner string, id int64) (*models.Task, error) {
	return s.taskRepo.GetOwned(ctx, owner, id)
}

// Update applies a partial update to owner's task. Nil request fields keep
// their stored values.
func (s *taskService) Update(ctx context.Context, owner string, id int64, req *models.UpdateTaskRequest) (*models.Task, error) {
	if err := validator.GetValidator().Struct(req); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	return s.taskRepo.Update(ctx, task)
}

// Delete removes owner's task with the given id.
func (s *taskService) Delete(ctx context.Context, owner string, id int64) error {
	return s.taskRepo.Delete(ctx, owner, id)
}
