package models

// Task represents a task record. Owner holds the owning user's username by
// value; it is stamped server-side on creation and never taken from the
// client.
type Task struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Completed   bool   `db:"completed" json:"completed"`
	Owner       string `db:"owner" json:"owner"`
}

// CreateTaskRequest defines the structure for a task creation request.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateTaskRequest carries a partial update. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Completed   *bool   `json:"completed"`
}
