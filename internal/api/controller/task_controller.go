package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"tasktracker/internal/api/apperrors"
	"tasktracker/internal/api/middleware"
	"tasktracker/internal/api/models"
	"tasktracker/internal/api/response"
	"tasktracker/internal/api/service"
)

// TaskController handles task CRUD HTTP requests. Every handler reads the
// caller's identity from the auth middleware and threads it into the service
// explicitly; the owner never comes from the request body.
type TaskController struct {
	taskService service.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(taskService service.TaskService) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// Create handles task creation for the authenticated user.
func (tc *TaskController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := tc.taskService.Create(c.Request.Context(), user.Username, &req)
	if err != nil {
		tc.writeError(c, err)
		return
	}

	response.CreatedResponse(c, task)
}

// List returns all of the authenticated user's tasks.
func (tc *TaskController) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		return
	}

	tasks, err := tc.taskService.List(c.Request.Context(), user.Username)
	if err != nil {
		tc.writeError(c, err)
		return
	}

	response.SuccessResponseList(c, tasks)
}

// Get returns a single task by id, owner-scoped.
func (tc *TaskController) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		return
	}

	id, err := taskID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := tc.taskService.Get(c.Request.Context(), user.Username, id)
	if err != nil {
		tc.writeError(c, err)
		return
	}

	response.SuccessResponse(c, task)
}

// Update applies a partial update to a task, owner-scoped.
func (tc *TaskController) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		return
	}

	id, err := taskID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := tc.taskService.Update(c.Request.Context(), user.Username, id, &req)
	if err != nil {
		tc.writeError(c, err)
		return
	}

	response.SuccessResponse(c, task)
}

// Delete removes a task, owner-scoped.
func (tc *TaskController) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		return
	}

	id, err := taskID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := tc.taskService.Delete(c.Request.Context(), user.Username, id); err != nil {
		tc.writeError(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "task deleted"})
}

// writeError maps the service error taxonomy to HTTP statuses in one place.
func (tc *TaskController) writeError(c *gin.Context, err error) {
	var verrs validatorv10.ValidationErrors
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		response.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &verrs):
		response.ErrorResponse(c, http.StatusBadRequest, verrs.Error())
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

func taskID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
