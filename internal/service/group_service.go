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

// GroupService defines the interface for group business logic
type GroupService interface {
	ListGroups(ctx context.Context, userID, boardID uuid.UUID) ([]dto.GroupResponse, error)
	CreateGroup(ctx context.Context, userID uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error
}

type groupServiceImpl struct {
	groupRepo repository.GroupRepository
	owner     ownership
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewGroupService creates a new instance of GroupService
func NewGroupService(
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	groupRepo repository.GroupRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) GroupService {
	return &groupServiceImpl{
		groupRepo: groupRepo,
		owner:     ownership{workspaces: workspaceRepo, boards: boardRepo},
		metrics:   m,
		logger:    logger,
	}
}

func (s *groupServiceImpl) ListGroups(ctx context.Context, userID, boardID uuid.UUID) ([]dto.GroupResponse, error) {
	groups, err := s.groupRepo.FindByBoard(ctx, boardID, userID)
	if err != nil {
		return nil, internalError("Failed to fetch groups", err)
	}
	return dto.NewGroupResponses(groups), nil
}

func (s *groupServiceImpl) CreateGroup(ctx context.Context, userID uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if _, err := s.owner.board(ctx, req.BoardID, userID); err != nil {
		return nil, err
	}

	group := &domain.Group{
		Name:    req.Name,
		Order:   req.Order,
		BoardID: req.BoardID,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, internalError("Failed to create group", err)
	}

	s.metrics.IncrementCreated(metrics.EntityGroup)
	resp := dto.NewGroupResponse(group)
	return &resp, nil
}

func (s *groupServiceImpl) UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.FindByIDForOwner(ctx, groupID, userID)
	if err != nil {
		return nil, lookupError(err, "Group")
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Order != nil {
		group.Order = *req.Order
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, writeError(err, "Group", "update")
	}

	resp := dto.NewGroupResponse(group)
	return &resp, nil
}

// DeleteGroup removes the group only; tasks keep their group_id
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	if _, err := s.groupRepo.FindByIDForOwner(ctx, groupID, userID); err != nil {
		return lookupError(err, "Group")
	}
	if err := s.groupRepo.Delete(ctx, groupID); err != nil {
		return writeError(err, "Group", "delete")
	}
	return nil
}
