package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
)

// WorkspaceService defines the interface for workspace business logic
type WorkspaceService interface {
	ListWorkspaces(ctx context.Context, userID uuid.UUID) ([]dto.WorkspaceResponse, error)
	CreateWorkspace(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	UpdateWorkspace(ctx context.Context, userID, workspaceID uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	DeleteWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error
}

type workspaceServiceImpl struct {
	workspaceRepo repository.WorkspaceRepository
	boardRepo     repository.BoardRepository
	tx            repository.Transactor
	owner         ownership
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewWorkspaceService creates a new instance of WorkspaceService
func NewWorkspaceService(
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	tx repository.Transactor,
	m *metrics.Metrics,
	logger *zap.Logger,
) WorkspaceService {
	return &workspaceServiceImpl{
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		tx:            tx,
		owner:         ownership{workspaces: workspaceRepo, boards: boardRepo},
		metrics:       m,
		logger:        logger,
	}
}

func (s *workspaceServiceImpl) ListWorkspaces(ctx context.Context, userID uuid.UUID) ([]dto.WorkspaceResponse, error) {
	workspaces, err := s.workspaceRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, internalError("Failed to fetch workspaces", err)
	}
	return dto.NewWorkspaceResponses(workspaces), nil
}

func (s *workspaceServiceImpl) CreateWorkspace(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	ws := &domain.Workspace{
		Name:        req.Name,
		Description: req.Description,
		Color:       orDefault(req.Color, DefaultWorkspaceColor),
		Icon:        orDefault(req.Icon, DefaultWorkspaceIcon),
		OwnerID:     userID,
	}
	if err := s.workspaceRepo.Create(ctx, ws); err != nil {
		return nil, internalError("Failed to create workspace", err)
	}

	s.metrics.IncrementCreated(metrics.EntityWorkspace)
	resp := dto.NewWorkspaceResponse(ws)
	return &resp, nil
}

// UpdateWorkspace applies the non-nil fields of req
func (s *workspaceServiceImpl) UpdateWorkspace(ctx context.Context, userID, workspaceID uuid.UUID, req *dto.UpdateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	ws, err := s.owner.workspace(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ws.Name = *req.Name
	}
	if req.Description != nil {
		ws.Description = req.Description
	}
	if req.Color != nil {
		ws.Color = *req.Color
	}
	if req.Icon != nil {
		ws.Icon = *req.Icon
	}

	if err := s.workspaceRepo.Update(ctx, ws); err != nil {
		return nil, writeError(err, "Workspace", "update")
	}

	resp := dto.NewWorkspaceResponse(ws)
	return &resp, nil
}

// DeleteWorkspace removes the workspace and its boards in one transaction.
// Groups, statuses and tasks of those boards are left in place.
func (s *workspaceServiceImpl) DeleteWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	var boardsDeleted int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.workspaceRepo.Delete(ctx, workspaceID, userID); err != nil {
			return writeError(err, "Workspace", "delete")
		}
		n, err := s.boardRepo.DeleteByWorkspaceID(ctx, workspaceID)
		if err != nil {
			return internalError("Failed to delete workspace boards", err)
		}
		boardsDeleted = n
		return nil
	})
	if err != nil {
		return passthrough(err, "Failed to delete workspace")
	}

	s.metrics.AddCascadeDeleted(metrics.EntityBoard, boardsDeleted)
	s.logger.Info("Workspace deleted",
		zap.String("workspace_id", workspaceID.String()),
		zap.Int64("boards_deleted", boardsDeleted),
	)
	return nil
}
