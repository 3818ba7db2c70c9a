package ports

import (
	"context"

	"github.com/taskhive/task-tracker/internal/core/domain"
)

// TaskPatch carries the optional fields of a partial update. Only non-nil
// fields are written; a patch with no fields set degrades to a plain read.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// IsEmpty reports whether the patch carries no fields.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// TaskRepository defines persistence operations for tasks. Every operation
// that addresses a single row takes both the task id and the owner id; the
// ownership predicate in the query is the sole authorization check, and no
// unscoped variant is exposed.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// List returns one page of the user's tasks ordered by creation time
	// descending, plus the total number of rows owned by the user. A page
	// past the end yields an empty slice with the correct total.
	List(ctx context.Context, userID int64, page, limit int) ([]domain.Task, int64, error)
	FindByID(ctx context.Context, taskID, userID int64) (*domain.Task, error)
	Update(ctx context.Context, taskID, userID int64, patch TaskPatch) (*domain.Task, error)
	// Delete removes the row and returns it, or domain.ErrTaskNotFound if
	// no row exists under that owner.
	Delete(ctx context.Context, taskID, userID int64) (*domain.Task, error)
}
