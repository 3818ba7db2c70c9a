package client

import "context"

// ListState is the load state of a TaskList.
type ListState string

const (
	StateLoading ListState = "loading"
	StateReady   ListState = "ready"
	StateError   ListState = "error"
)

// TaskList maintains a local mirror of one page of tasks. Mutations are
// applied optimistically to the mirror and then reconciled with a follow-up
// fetch, so local edits are never trusted long-term.
//
// Like Client, a TaskList serves a single goroutine.
type TaskList struct {
	client *Client
	page   int
	limit  int

	state      ListState
	tasks      []Task
	total      int64
	totalPages int
	lastErr    error
}

// NewTaskList creates a mirror over the given page. Call Load before reading.
func NewTaskList(c *Client, page, limit int) *TaskList {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return &TaskList{client: c, page: page, limit: limit, state: StateLoading}
}

// State reports the current load state.
func (l *TaskList) State() ListState { return l.state }

// Tasks returns the current mirror contents.
func (l *TaskList) Tasks() []Task { return l.tasks }

// Total returns the server-reported total row count from the last fetch.
func (l *TaskList) Total() int64 { return l.total }

// TotalPages returns the server-reported page count from the last fetch.
func (l *TaskList) TotalPages() int { return l.totalPages }

// Err returns the error from the last failed operation, if any.
func (l *TaskList) Err() error { return l.lastErr }

// Load fetches the current page, replacing the mirror with server truth.
func (l *TaskList) Load(ctx context.Context) error {
	l.state = StateLoading
	result, err := l.client.Tasks(ctx, l.page, l.limit)
	if err != nil {
		l.state = StateError
		l.lastErr = err
		return err
	}
	l.tasks = result.Tasks
	l.total = result.Total
	l.totalPages = result.TotalPages
	l.state = StateReady
	l.lastErr = nil
	return nil
}

// SetPage switches the mirror to another page and re-fetches it.
func (l *TaskList) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	l.page = page
	return l.Load(ctx)
}

// Create creates a task, prepends it to the mirror, and issues a
// reconciling read to restore server ordering and totals.
func (l *TaskList) Create(ctx context.Context, title string, description *string) (*Task, error) {
	task, err := l.client.CreateTask(ctx, title, description)
	if err != nil {
		l.lastErr = err
		return nil, err
	}

	l.tasks = append([]Task{*task}, l.tasks...)
	if err := l.Load(ctx); err != nil {
		return task, err
	}
	return task, nil
}

// Update applies a partial update, replaces the matching mirror entry, and
// issues a reconciling read.
func (l *TaskList) Update(ctx context.Context, id int64, patch TaskPatch) (*Task, error) {
	task, err := l.client.UpdateTask(ctx, id, patch)
	if err != nil {
		l.lastErr = err
		return nil, err
	}

	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i] = *task
			break
		}
	}
	if err := l.Load(ctx); err != nil {
		return task, err
	}
	return task, nil
}

// Delete removes the task server-side, drops it from the mirror, and issues
// a reconciling read so the page refills from the server.
func (l *TaskList) Delete(ctx context.Context, id int64) error {
	if err := l.client.DeleteTask(ctx, id); err != nil {
		l.lastErr = err
		return err
	}

	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	l.tasks = kept

	return l.Load(ctx)
}
