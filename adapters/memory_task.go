package adapters

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

// MemoryTaskRepository is an in-memory implementation of TaskRepository.
// It is used when no MongoDB URI is configured.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*entities.Task
}

// Ensure MemoryTaskRepository implements the TaskRepository interface
var _ repositories.TaskRepository = (*MemoryTaskRepository)(nil)

// NewMemoryTaskRepository creates a new in-memory task repository
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[string]*entities.Task),
	}
}

// Create implements TaskRepository interface
func (m *MemoryTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = uuid.New().String()

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	taskCopy := *task
	m.tasks[task.ID] = &taskCopy

	return nil
}

// List implements TaskRepository interface. Tasks are ordered by creation time.
func (m *MemoryTaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*entities.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		taskCopy := *task
		result = append(result, &taskCopy)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// GetByID implements TaskRepository interface
func (m *MemoryTaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	if id == "" {
		return nil, errors.New("task ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	task, exists := m.tasks[id]
	if !exists {
		return nil, repositories.ErrTaskNotFound
	}

	// Return a copy to prevent external modifications
	taskCopy := *task
	return &taskCopy, nil
}

// Delete implements TaskRepository interface
func (m *MemoryTaskRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tasks[id]; !exists {
		return repositories.ErrTaskNotFound
	}
	delete(m.tasks, id)

	return nil
}
