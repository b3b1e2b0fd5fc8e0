package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TaskServiceImpl implements TaskService
var _ TaskService = (*TaskServiceImpl)(nil)

// TaskServiceImpl handles task business logic
type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	ledger   LedgerService
}

// NewTaskService creates a new TaskServiceImpl
func NewTaskService(taskRepo repositories.TaskRepository, ledger LedgerService) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		ledger:   ledger,
	}
}

// GetTasks lists every task
func (s *TaskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a pending task
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
		Completed:   false,
		AssignedTo:  req.AssignedTo,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("Task created", "id", task.ID, "title", task.Title, "points", task.Points, "assignedTo", task.AssignedTo)
	return task, nil
}

// CompleteTask marks a task completed and credits its points to the assignee.
// The state change and the ledger credit are one logical unit: if the credit
// cannot be appended the completion is reverted before the error propagates.
// Completing an already-completed task is a no-op so the award cannot be
// issued twice.
func (s *TaskServiceImpl) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Completed {
		slog.Warn("Task already completed, skipping award", "id", task.ID)
		return task, nil
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	reason := fmt.Sprintf("Completed task: %s", task.Title)
	if _, err := s.ledger.AddPoints(ctx, task.AssignedTo, task.Points, reason); err != nil {
		// Revert the completion so the task never sits completed without
		// its matching credit.
		task.Completed = false
		task.CompletedAt = nil
		if revertErr := s.taskRepo.Update(ctx, task); revertErr != nil {
			slog.Error("Failed to revert task completion", "error", revertErr, "id", task.ID)
		}
		return nil, fmt.Errorf("failed to credit task points: %w", err)
	}

	slog.Info("Task completed", "id", task.ID, "points", task.Points, "assignedTo", task.AssignedTo)
	return task, nil
}

// DeleteTask removes a task regardless of its completed state. Points already
// credited for it stay on the ledger: the ledger records what actually
// happened, the task list is just a worklist.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	slog.Info("Task deleted", "id", id)
	return nil
}
