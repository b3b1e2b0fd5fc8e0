// Package memory provides volatile implementations of the repository
// interfaces backed by mutex-guarded maps. Each repository is an
// explicitly-owned store constructed per instance, so tests and the
// memory-driver deployment get isolated state rather than process-wide
// singletons.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

// Compile-time check to ensure TaskRepository implements the interface
var _ repositories.TaskRepository = (*TaskRepository)(nil)

// TaskRepository stores tasks in memory
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
}

// NewTaskRepository creates a new in-memory TaskRepository
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[string]*models.Task),
	}
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = uuid.NewString()
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

// FindByID finds a task by its id
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *task
	return &found, nil
}

// FindAll returns every task
func (r *TaskRepository) FindAll(ctx context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		found := *task
		tasks = append(tasks, &found)
	}
	return tasks, nil
}

// Update replaces the stored task with the given one
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

// Delete removes a task by its id
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
