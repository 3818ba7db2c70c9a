package ports

import (
	"context"

	"github.com/taskhive/task-tracker/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. Status is never
// an input: new tasks always start as pending.
type CreateTaskInput struct {
	UserID      int64
	Title       string
	Description *string
}

// UpdateTaskInput carries a partial update. Nil fields are left untouched.
type UpdateTaskInput struct {
	TaskID int64
	UserID int64
	Patch  TaskPatch
}

// ListTasksInput carries pagination parameters. Page and Limit are
// normalized by the service (defaults 1 and 10).
type ListTasksInput struct {
	UserID int64
	Page   int
	Limit  int
}

// ListTasksResult is one page of tasks plus pagination bookkeeping.
// TotalPages is ceil(Total/Limit); zero when the user owns no tasks.
type ListTasksResult struct {
	Tasks      []domain.Task
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TaskService defines use-case operations for the task lifecycle.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, input ListTasksInput) (*ListTasksResult, error)
	GetTask(ctx context.Context, taskID, userID int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID, userID int64) (*domain.Task, error)
}
