package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

const taskCollection = "tasks"

// taskDocument is the stored shape of entities.Task
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d taskDocument) toEntity() *entities.Task {
	return &entities.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type TaskRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewTaskRepository creates a new MongoDB task repository
func NewTaskRepository(db *mongo.Database, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{
		collection: db.Collection(taskCollection),
		logger:     logger,
	}
}

// Ensure TaskRepository implements the TaskRepository interface
var _ repositories.TaskRepository = (*TaskRepository)(nil)

// EnsureIndexes creates the index used to list tasks in creation order
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}
	return nil
}

// Create implements repositories.TaskRepository
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}
	if err := task.Validate(); err != nil {
		return err
	}

	// Mongo stores milliseconds; truncate so the returned task matches what is read back
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := taskDocument{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	task.ID = oid.Hex()
	task.CreatedAt = now
	task.UpdatedAt = now

	return nil
}

// List implements repositories.TaskRepository
func (r *TaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	tasks := make([]*entities.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toEntity())
	}
	return tasks, nil
}

// GetByID implements repositories.TaskRepository
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID cannot match any stored task
		return nil, repositories.ErrTaskNotFound
	}

	var doc taskDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

// Delete implements repositories.TaskRepository
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrTaskNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrTaskNotFound
	}

	r.logger.Debug("Task deleted", zap.String("id", id))
	return nil
}
