package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskflow-api/internal/repository"
)

// BusinessMetricsCollector refreshes the business gauges from the store
type BusinessMetricsCollector struct {
	users      repository.UserRepository
	workspaces repository.WorkspaceRepository
	boards     repository.BoardRepository
	tasks      repository.TaskRepository
	metrics    *Metrics
	logger     *zap.Logger
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(
	users repository.UserRepository,
	workspaces repository.WorkspaceRepository,
	boards repository.BoardRepository,
	tasks repository.TaskRepository,
	m *Metrics,
	logger *zap.Logger,
) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		users:      users,
		workspaces: workspaces,
		boards:     boards,
		tasks:      tasks,
		metrics:    m,
		logger:     logger,
	}
}

// Collect counts users, workspaces, boards and tasks. A failing count is
// logged and skipped; the others are still published.
func (c *BusinessMetricsCollector) Collect(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n, err := c.users.Count(ctx); err != nil {
		c.logger.Error("Failed to count users", zap.Error(err))
	} else {
		c.metrics.SetUsersTotal(n)
	}

	if n, err := c.workspaces.Count(ctx); err != nil {
		c.logger.Error("Failed to count workspaces", zap.Error(err))
	} else {
		c.metrics.SetWorkspacesTotal(n)
	}

	if n, err := c.boards.Count(ctx); err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(n)
	}

	byPriority, err := c.tasks.CountByPriority(ctx)
	if err != nil {
		c.logger.Error("Failed to count tasks", zap.Error(err))
		return
	}
	labels := make(map[string]int64, len(byPriority))
	for p, n := range byPriority {
		labels[string(p)] = n
	}
	c.metrics.SetTasksTotal(labels)
}
