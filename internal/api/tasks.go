package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

func listTasks(c echo.Context, repo repositories.TaskRepository) error {
	tasks, err := repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func createTask(c echo.Context, repo repositories.TaskRepository, logger *zap.Logger) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind task request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}

	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if err := task.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := repo.Create(c.Request().Context(), task); err != nil {
		return err
	}

	logger.Info("Task created", zap.String("task_id", task.ID))
	return c.JSON(http.StatusCreated, task)
}

func getTask(c echo.Context, repo repositories.TaskRepository) error {
	task, err := repo.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repositories.ErrTaskNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func deleteTask(c echo.Context, repo repositories.TaskRepository, logger *zap.Logger) error {
	id := c.Param("id")
	err := repo.Delete(c.Request().Context(), id)
	if errors.Is(err, repositories.ErrTaskNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return err
	}

	logger.Info("Task deleted", zap.String("task_id", id))
	return c.NoContent(http.StatusNoContent)
}
