package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
	"taskflow-api/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	ListTasks(ctx context.Context, userID uuid.UUID, query *dto.ListTasksQuery) ([]dto.TaskResponse, error)
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	taskRepo   repository.TaskRepository
	groupRepo  repository.GroupRepository
	statusRepo repository.StatusRepository
	owner      ownership
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	groupRepo repository.GroupRepository,
	statusRepo repository.StatusRepository,
	taskRepo repository.TaskRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:   taskRepo,
		groupRepo:  groupRepo,
		statusRepo: statusRepo,
		owner:      ownership{workspaces: workspaceRepo, boards: boardRepo},
		metrics:    m,
		logger:     logger,
	}
}

// ListTasks returns the requester's tasks matching query
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, query *dto.ListTasksQuery) ([]dto.TaskResponse, error) {
	filter, err := buildTaskFilter(userID, query)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, internalError("Failed to fetch tasks", err)
	}
	return dto.NewTaskResponses(tasks), nil
}

func buildTaskFilter(userID uuid.UUID, query *dto.ListTasksQuery) (repository.TaskFilter, error) {
	filter := repository.TaskFilter{OwnerID: userID, Search: query.Search}

	var err error
	if filter.BoardID, err = parseOptionalID(query.BoardID, "board_id"); err != nil {
		return filter, err
	}
	if filter.GroupID, err = parseOptionalID(query.GroupID, "group_id"); err != nil {
		return filter, err
	}
	if filter.StatusID, err = parseOptionalID(query.StatusID, "status_id"); err != nil {
		return filter, err
	}
	if query.Priority != "" {
		p := domain.Priority(query.Priority)
		if !p.Valid() {
			return filter, response.NewValidationError("Invalid priority", query.Priority)
		}
		filter.Priority = &p
	}
	return filter, nil
}

func parseOptionalID(raw, field string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, response.NewValidationError("Invalid "+field, raw)
	}
	return &id, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := s.owner.board(ctx, req.BoardID, userID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, response.NewValidationError("Invalid priority", string(priority))
	}
	if err := validateTaskDateRange(req.StartDate, req.DueDate); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		StatusID:    req.StatusID,
		GroupID:     req.GroupID,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Order:       req.Order,
		BoardID:     req.BoardID,
	}
	if task.StatusID != nil {
		if err := s.checkStatus(ctx, userID, task.BoardID, *task.StatusID); err != nil {
			return nil, err
		}
	}
	if task.GroupID != nil {
		if err := s.checkGroup(ctx, userID, task.BoardID, *task.GroupID); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, internalError("Failed to create task", err)
	}

	s.metrics.IncrementCreated(metrics.EntityTask)
	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByIDForOwner(ctx, taskID, userID)
	if err != nil {
		return nil, lookupError(err, "Task")
	}
	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// UpdateTask applies the non-nil fields of req. updated_at is always refreshed.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByIDForOwner(ctx, taskID, userID)
	if err != nil {
		return nil, lookupError(err, "Task")
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, response.NewValidationError("Invalid priority", string(*req.Priority))
		}
		task.Priority = *req.Priority
	}
	if req.StatusID != nil {
		task.StatusID = req.StatusID
	}
	if req.GroupID != nil {
		task.GroupID = req.GroupID
	}
	if req.StartDate != nil {
		task.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Order != nil {
		task.Order = *req.Order
	}

	if err := validateTaskDateRange(task.StartDate, task.DueDate); err != nil {
		return nil, err
	}
	// only references present in the payload are checked; a stored one may
	// point at a group or status deleted since
	if req.StatusID != nil {
		if err := s.checkStatus(ctx, userID, task.BoardID, *req.StatusID); err != nil {
			return nil, err
		}
	}
	if req.GroupID != nil {
		if err := s.checkGroup(ctx, userID, task.BoardID, *req.GroupID); err != nil {
			return nil, err
		}
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, writeError(err, "Task", "update")
	}

	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.taskRepo.FindByIDForOwner(ctx, taskID, userID); err != nil {
		return lookupError(err, "Task")
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return writeError(err, "Task", "delete")
	}
	return nil
}

// checkStatus verifies that statusID is a status of boardID
func (s *taskServiceImpl) checkStatus(ctx context.Context, userID, boardID, statusID uuid.UUID) error {
	status, err := s.statusRepo.FindByIDForOwner(ctx, statusID, userID)
	if err != nil && !isNotFound(err) {
		return internalError("Failed to fetch status", err)
	}
	if status == nil || status.BoardID != boardID {
		return response.NewValidationError("Status does not belong to the task's board", statusID.String())
	}
	return nil
}

// checkGroup verifies that groupID is a group of boardID
func (s *taskServiceImpl) checkGroup(ctx context.Context, userID, boardID, groupID uuid.UUID) error {
	group, err := s.groupRepo.FindByIDForOwner(ctx, groupID, userID)
	if err != nil && !isNotFound(err) {
		return internalError("Failed to fetch group", err)
	}
	if group == nil || group.BoardID != boardID {
		return response.NewValidationError("Group does not belong to the task's board", groupID.String())
	}
	return nil
}

func validateTaskDateRange(startDate, dueDate *time.Time) error {
	if startDate != nil && dueDate != nil && startDate.After(*dueDate) {
		return response.NewValidationError("Start date cannot be after due date", "")
	}
	return nil
}
