package handler

import (
	"github.com/taskhive/task-tracker/internal/core/domain"
	"github.com/taskhive/task-tracker/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateInput(req updateTaskRequest, taskID, userID int64) ports.UpdateTaskInput {
	patch := ports.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	return ports.UpdateTaskInput{TaskID: taskID, UserID: userID, Patch: patch}
}

// --- Service result → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

func toListResponse(r *ports.ListTasksResult) listTasksResponse {
	tasks := make([]taskResponse, len(r.Tasks))
	for i := range r.Tasks {
		tasks[i] = toTaskResponse(&r.Tasks[i])
	}
	return listTasksResponse{
		Tasks:      tasks,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}
