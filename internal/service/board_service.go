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

// BoardService defines the interface for board business logic
type BoardService interface {
	ListBoards(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]dto.BoardResponse, error)
	CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
}

type boardServiceImpl struct {
	boardRepo  repository.BoardRepository
	groupRepo  repository.GroupRepository
	statusRepo repository.StatusRepository
	taskRepo   repository.TaskRepository
	tx         repository.Transactor
	owner      ownership
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	groupRepo repository.GroupRepository,
	statusRepo repository.StatusRepository,
	taskRepo repository.TaskRepository,
	tx repository.Transactor,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:  boardRepo,
		groupRepo:  groupRepo,
		statusRepo: statusRepo,
		taskRepo:   taskRepo,
		tx:         tx,
		owner:      ownership{workspaces: workspaceRepo, boards: boardRepo},
		metrics:    m,
		logger:     logger,
	}
}

// ListBoards lists boards of the requester's workspaces, optionally for one workspace
func (s *boardServiceImpl) ListBoards(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindByOwner(ctx, userID, workspaceID)
	if err != nil {
		return nil, internalError("Failed to fetch boards", err)
	}
	return dto.NewBoardResponses(boards), nil
}

// CreateBoard creates the board and its four default statuses atomically
func (s *boardServiceImpl) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	board := &domain.Board{
		Name:        req.Name,
		Description: req.Description,
		Color:       orDefault(req.Color, DefaultBoardColor),
		Icon:        orDefault(req.Icon, DefaultBoardIcon),
		WorkspaceID: req.WorkspaceID,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.owner.workspace(ctx, req.WorkspaceID, userID); err != nil {
			return err
		}
		if err := s.boardRepo.Create(ctx, board); err != nil {
			return internalError("Failed to create board", err)
		}
		if err := s.statusRepo.CreateBatch(ctx, buildStatuses(board, defaultStatuses)); err != nil {
			return internalError("Failed to create default statuses", err)
		}
		return nil
	})
	if err != nil {
		return nil, passthrough(err, "Failed to create board")
	}

	s.metrics.IncrementCreated(metrics.EntityBoard)
	resp := dto.NewBoardResponse(board)
	return &resp, nil
}

func (s *boardServiceImpl) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := s.owner.board(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewBoardResponse(board)
	return &resp, nil
}

// UpdateBoard applies the non-nil fields of req
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	board, err := s.owner.board(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = req.Description
	}
	if req.Color != nil {
		board.Color = *req.Color
	}
	if req.Icon != nil {
		board.Icon = *req.Icon
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, writeError(err, "Board", "update")
	}

	resp := dto.NewBoardResponse(board)
	return &resp, nil
}

// DeleteBoard removes the board with all of its groups, statuses and tasks
// in one transaction.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	var groups, statuses, tasks int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.owner.board(ctx, boardID, userID); err != nil {
			return err
		}
		if err := s.boardRepo.Delete(ctx, boardID); err != nil {
			return writeError(err, "Board", "delete")
		}

		var err error
		if groups, err = s.groupRepo.DeleteByBoardID(ctx, boardID); err != nil {
			return internalError("Failed to delete board groups", err)
		}
		if statuses, err = s.statusRepo.DeleteByBoardID(ctx, boardID); err != nil {
			return internalError("Failed to delete board statuses", err)
		}
		if tasks, err = s.taskRepo.DeleteByBoardID(ctx, boardID); err != nil {
			return internalError("Failed to delete board tasks", err)
		}
		return nil
	})
	if err != nil {
		return passthrough(err, "Failed to delete board")
	}

	s.metrics.AddCascadeDeleted(metrics.EntityGroup, groups)
	s.metrics.AddCascadeDeleted(metrics.EntityStatus, statuses)
	s.metrics.AddCascadeDeleted(metrics.EntityTask, tasks)
	s.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.Int64("groups_deleted", groups),
		zap.Int64("statuses_deleted", statuses),
		zap.Int64("tasks_deleted", tasks),
	)
	return nil
}
