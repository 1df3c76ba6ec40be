package repositories

import (
	"context"
	"errors"

	"github.com/satriahrh/moodpulse/domain/entities"
)

// ErrTaskNotFound is returned when no task has the requested ID
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines data access methods for tasks
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	List(ctx context.Context) ([]*entities.Task, error)
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
}
