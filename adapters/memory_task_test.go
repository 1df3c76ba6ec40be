package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

func TestMemoryTaskRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()

	first := &entities.Task{Title: "Log morning session"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if first.ID == "" {
		t.Fatal("Expected generated ID")
	}
	if first.CreatedAt.IsZero() || !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Errorf("Expected timestamps to be set, got %v / %v", first.CreatedAt, first.UpdatedAt)
	}

	second := &entities.Task{Title: "Review summary", Description: "weekly"}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	got, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if got.Description != "weekly" {
		t.Errorf("Expected description 'weekly', got %q", got.Description)
	}

	// Returned values are copies
	got.Title = "changed"
	again, _ := repo.GetByID(ctx, second.ID)
	if again.Title != "Review summary" {
		t.Errorf("Repository state leaked through returned pointer")
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}
	if _, err := repo.GetByID(ctx, first.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestMemoryTaskRepository_CreateInvalid(t *testing.T) {
	repo := NewMemoryTaskRepository()

	if err := repo.Create(context.Background(), nil); err == nil {
		t.Error("Expected error for nil task")
	}
	if err := repo.Create(context.Background(), &entities.Task{Title: "   "}); err == nil {
		t.Error("Expected error for blank title")
	}
}
