package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// StatusRepository defines the interface for status data access
type StatusRepository interface {
	Create(ctx context.Context, status *domain.Status) error
	CreateBatch(ctx context.Context, statuses []*domain.Status) error
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Status, error)
	FindByBoard(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Status, error)
	Update(ctx context.Context, status *domain.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

type statusRepositoryImpl struct {
	db *gorm.DB
}

// NewStatusRepository creates a new instance of StatusRepository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepositoryImpl{db: db}
}

func (r *statusRepositoryImpl) Create(ctx context.Context, status *domain.Status) error {
	return conn(ctx, r.db).Create(status).Error
}

// CreateBatch inserts all statuses in one statement
func (r *statusRepositoryImpl) CreateBatch(ctx context.Context, statuses []*domain.Status) error {
	if len(statuses) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&statuses).Error
}

func (r *statusRepositoryImpl) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Status, error) {
	db := conn(ctx, r.db)
	var status domain.Status
	if err := db.
		Where("id = ? AND board_id IN (?)", id, ownedBoardIDs(db, ownerID)).
		First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepositoryImpl) FindByBoard(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Status, error) {
	db := conn(ctx, r.db)
	var statuses []*domain.Status
	if err := db.
		Where("board_id = ? AND board_id IN (?)", boardID, ownedBoardIDs(db, ownerID)).
		Order("sort_order ASC, created_at ASC").
		Limit(MaxListSize).
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *statusRepositoryImpl) Update(ctx context.Context, status *domain.Status) error {
	return rowsOrNotFound(conn(ctx, r.db).Model(status).Select("*").Updates(status))
}

func (r *statusRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return rowsOrNotFound(conn(ctx, r.db).Where("id = ?", id).Delete(&domain.Status{}))
}

func (r *statusRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	res := conn(ctx, r.db).Where("board_id = ?", boardID).Delete(&domain.Status{})
	return res.RowsAffected, res.Error
}

// DeleteOrphans removes statuses whose board no longer exists
func (r *statusRepositoryImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	db := conn(ctx, r.db)
	res := db.Where("board_id NOT IN (?)", existingBoardIDs(db)).Delete(&domain.Status{})
	return res.RowsAffected, res.Error
}
