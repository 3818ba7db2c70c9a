package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskhive/task-tracker/internal/core/domain"
	"github.com/taskhive/task-tracker/internal/core/ports"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task row.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns one page of the user's tasks ordered by created_at descending,
// ties broken by id descending, plus the total row count for the user.
func (r *TaskRepository) List(ctx context.Context, userID int64, page, limit int) ([]domain.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	var tasks []domain.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, total, nil
}

// FindByID retrieves the task only when it is owned by userID. An existing
// row under another owner is reported as not found, never as forbidden.
func (r *TaskRepository) FindByID(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

// Update writes only the fields present in the patch and returns the updated
// row. An empty patch is a plain ownership-scoped read. The status value is
// the caller's responsibility; no enum check happens here.
func (r *TaskRepository) Update(ctx context.Context, taskID, userID int64, patch ports.TaskPatch) (*domain.Task, error) {
	task, err := r.FindByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return task, nil
	}

	updates := make(map[string]interface{}, 3)
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	if err := r.db.WithContext(ctx).Model(task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the row under the owner scope and returns the deleted row.
func (r *TaskRepository) Delete(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	task, err := r.FindByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&domain.Task{}).Error; err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return task, nil
}
