package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// WorkspaceRepository defines the interface for workspace data access.
// Reads and deletes are scoped to the owner; a foreign workspace is not found.
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Workspace, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Workspace, error)
	ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)
	Update(ctx context.Context, workspace *domain.Workspace) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type workspaceRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new instance of WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepositoryImpl{db: db}
}

func (r *workspaceRepositoryImpl) Create(ctx context.Context, workspace *domain.Workspace) error {
	return conn(ctx, r.db).Create(workspace).Error
}

func (r *workspaceRepositoryImpl) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Workspace, error) {
	var ws domain.Workspace
	if err := conn(ctx, r.db).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

// FindByOwner lists the owner's workspaces, oldest first
func (r *workspaceRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Workspace, error) {
	var workspaces []*domain.Workspace
	if err := conn(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Limit(MaxListSize).
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *workspaceRepositoryImpl) ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var n int64
	if err := conn(ctx, r.db).
		Model(&domain.Workspace{}).
		Where("owner_id = ?", ownerID).
		Limit(1).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Update writes all columns of a previously loaded workspace.
// A row deleted in the meantime yields gorm.ErrRecordNotFound.
func (r *workspaceRepositoryImpl) Update(ctx context.Context, workspace *domain.Workspace) error {
	return rowsOrNotFound(conn(ctx, r.db).Model(workspace).Select("*").Updates(workspace))
}

// Delete removes the workspace row only; boards are removed by the caller
func (r *workspaceRepositoryImpl) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return rowsOrNotFound(conn(ctx, r.db).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Workspace{}))
}

func (r *workspaceRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&domain.Workspace{}).Count(&n).Error
	return n, err
}
