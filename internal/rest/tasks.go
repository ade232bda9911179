package rest

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// TaskStatus is the lifecycle state of an async task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskNotFound  TaskStatus = "not-found"
)

// TaskResult is the recorded outcome of a finished task: the endpoint's
// result value plus the message that would have accompanied a synchronous
// response.
type TaskResult struct {
	Result  any    `json:"result"`
	Message string `json:"message"`
}

// task is one spawned unit of work.
type task struct {
	id     int64
	status TaskStatus
	result TaskResult
}

// TaskManager runs endpoint work asynchronously when a request sets
// async_query. Tasks get monotonically increasing integer ids; results stay
// retrievable until the manager is stopped.
type TaskManager struct {
	logger zerolog.Logger

	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*task

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTaskManager returns a ready task manager. Stop must be called to
// release the workers it spawns.
func NewTaskManager(logger zerolog.Logger) *TaskManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskManager{
		logger: logger,
		tasks:  make(map[int64]*task),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Spawn runs fn in the background and returns the task id for later
// retrieval. fn receives a context that is cancelled when the manager
// stops.
func (m *TaskManager) Spawn(name string, fn func(ctx context.Context) (any, string)) int64 {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.tasks[id] = &task{id: id, status: TaskPending}
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		result, message := fn(m.ctx)

		m.mu.Lock()
		if t, ok := m.tasks[id]; ok {
			t.status = TaskCompleted
			t.result = TaskResult{Result: result, Message: message}
		}
		m.mu.Unlock()

		m.logger.Debug().Int64("task_id", id).Str("task", name).Msg("async task completed")
	}()
	return id
}

// Status reports the state and, when completed, the outcome of a task.
func (m *TaskManager) Status(id int64) (TaskStatus, TaskResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return TaskNotFound, TaskResult{}
	}
	return t.status, t.result
}

// Outcomes returns the ids of all known tasks split by completion.
func (m *TaskManager) Outcomes() (pending, completed []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.tasks {
		if t.status == TaskCompleted {
			completed = append(completed, id)
		} else {
			pending = append(pending, id)
		}
	}
	return pending, completed
}

// Stop cancels running tasks and waits for their goroutines to exit.
func (m *TaskManager) Stop() {
	m.cancel()
	m.wg.Wait()
}
