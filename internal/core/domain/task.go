package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidStatus = errors.New("invalid task status")

// IsValid reports whether s is one of the three enumerated statuses.
// Nothing outside this set is ever persisted.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a user-owned unit of work. Ownership is the authorization
// mechanism: every point read and mutation is scoped by both the task id
// and the owning user id, so a cross-user access is indistinguishable
// from a missing row.
type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"user_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description *string    `json:"description" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);default:pending;check:status IN ('pending','in_progress','done')"`
	CreatedAt   time.Time  `json:"created_at" gorm:"<-:create"`

	// Deleting a user cascades to all owned tasks.
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
