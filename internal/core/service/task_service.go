package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-tracker/internal/api/metrics"
	"github.com/taskhive/task-tracker/internal/core/domain"
	"github.com/taskhive/task-tracker/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// CreateTask persists a new task owned by the caller. Status is forced to
// pending regardless of input; title presence is the transport layer's job.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.logger.Info().Int64("task_id", task.ID).Int64("user_id", task.UserID).Msg("task created")
	return task, nil
}

// ListTasks returns one page of the caller's tasks, newest first, with the
// total count and total page count. Out-of-range pages are not an error:
// they yield an empty page with correct totals.
func (s *TaskService) ListTasks(ctx context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	tasks, total, err := s.repo.List(ctx, input.UserID, page, limit)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to list tasks")
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return &ports.ListTasksResult{
		Tasks:      tasks,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, taskID, userID)
}

// UpdateTask applies the present patch fields to the caller's task. An empty
// patch degrades to a read. A status outside the enum is rejected before any
// storage access, so an invalid update never touches the row.
func (s *TaskService) UpdateTask(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	if input.Patch.Status != nil && !input.Patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := s.repo.Update(ctx, input.TaskID, input.UserID, input.Patch)
	if err != nil {
		return nil, err
	}

	metrics.TasksUpdatedTotal.WithLabelValues(string(task.Status)).Inc()
	s.logger.Info().Int64("task_id", task.ID).Int64("user_id", task.UserID).Msg("task updated")
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	task, err := s.repo.Delete(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	metrics.TasksDeletedTotal.Inc()
	s.logger.Info().Int64("task_id", taskID).Int64("user_id", userID).Msg("task deleted")
	return task, nil
}

// totalPages computes ceil(total/limit) in integer arithmetic.
// A user with no tasks has zero pages, not one.
func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
