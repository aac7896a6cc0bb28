package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Board, error)
	// FindByOwner lists boards of workspaces owned by ownerID, optionally
	// narrowed to one workspace.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, workspaceID *uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return conn(ctx, r.db).Create(board).Error
}

func (r *boardRepositoryImpl) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Board, error) {
	db := conn(ctx, r.db)
	var board domain.Board
	if err := db.
		Where("id = ? AND workspace_id IN (?)", id, ownedWorkspaceIDs(db, ownerID)).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID, workspaceID *uuid.UUID) ([]*domain.Board, error) {
	db := conn(ctx, r.db)
	query := db.Where("workspace_id IN (?)", ownedWorkspaceIDs(db, ownerID))
	if workspaceID != nil {
		query = query.Where("workspace_id = ?", *workspaceID)
	}

	var boards []*domain.Board
	if err := query.
		Order("created_at ASC").
		Limit(MaxListSize).
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return rowsOrNotFound(conn(ctx, r.db).Model(board).Select("*").Updates(board))
}

// Delete removes the board row only; children are removed by the caller
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return rowsOrNotFound(conn(ctx, r.db).Where("id = ?", id).Delete(&domain.Board{}))
}

func (r *boardRepositoryImpl) DeleteByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	res := conn(ctx, r.db).Where("workspace_id = ?", workspaceID).Delete(&domain.Board{})
	return res.RowsAffected, res.Error
}

func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&domain.Board{}).Count(&n).Error
	return n, err
}
