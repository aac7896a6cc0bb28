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

// StatusService defines the interface for status business logic
type StatusService interface {
	ListStatuses(ctx context.Context, userID, boardID uuid.UUID) ([]dto.StatusResponse, error)
	CreateStatus(ctx context.Context, userID uuid.UUID, req *dto.CreateStatusRequest) (*dto.StatusResponse, error)
	UpdateStatus(ctx context.Context, userID, statusID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.StatusResponse, error)
	DeleteStatus(ctx context.Context, userID, statusID uuid.UUID) error
}

type statusServiceImpl struct {
	statusRepo repository.StatusRepository
	owner      ownership
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewStatusService creates a new instance of StatusService
func NewStatusService(
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	statusRepo repository.StatusRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) StatusService {
	return &statusServiceImpl{
		statusRepo: statusRepo,
		owner:      ownership{workspaces: workspaceRepo, boards: boardRepo},
		metrics:    m,
		logger:     logger,
	}
}

func (s *statusServiceImpl) ListStatuses(ctx context.Context, userID, boardID uuid.UUID) ([]dto.StatusResponse, error) {
	statuses, err := s.statusRepo.FindByBoard(ctx, boardID, userID)
	if err != nil {
		return nil, internalError("Failed to fetch statuses", err)
	}
	return dto.NewStatusResponses(statuses), nil
}

func (s *statusServiceImpl) CreateStatus(ctx context.Context, userID uuid.UUID, req *dto.CreateStatusRequest) (*dto.StatusResponse, error) {
	if _, err := s.owner.board(ctx, req.BoardID, userID); err != nil {
		return nil, err
	}

	status := &domain.Status{
		Name:    req.Name,
		Color:   req.Color,
		Order:   req.Order,
		BoardID: req.BoardID,
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, internalError("Failed to create status", err)
	}

	s.metrics.IncrementCreated(metrics.EntityStatus)
	resp := dto.NewStatusResponse(status)
	return &resp, nil
}

func (s *statusServiceImpl) UpdateStatus(ctx context.Context, userID, statusID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.StatusResponse, error) {
	status, err := s.statusRepo.FindByIDForOwner(ctx, statusID, userID)
	if err != nil {
		return nil, lookupError(err, "Status")
	}

	if req.Name != nil {
		status.Name = *req.Name
	}
	if req.Color != nil {
		status.Color = *req.Color
	}
	if req.Order != nil {
		status.Order = *req.Order
	}

	if err := s.statusRepo.Update(ctx, status); err != nil {
		return nil, writeError(err, "Status", "update")
	}

	resp := dto.NewStatusResponse(status)
	return &resp, nil
}

func (s *statusServiceImpl) DeleteStatus(ctx context.Context, userID, statusID uuid.UUID) error {
	if _, err := s.statusRepo.FindByIDForOwner(ctx, statusID, userID); err != nil {
		return lookupError(err, "Status")
	}
	if err := s.statusRepo.Delete(ctx, statusID); err != nil {
		return writeError(err, "Status", "delete")
	}
	return nil
}
