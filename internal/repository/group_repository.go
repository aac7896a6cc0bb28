package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	CreateBatch(ctx context.Context, groups []*domain.Group) error
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Group, error)
	FindByBoard(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Group, error)
	Update(ctx context.Context, group *domain.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

type groupRepositoryImpl struct {
	db *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepositoryImpl{db: db}
}

func (r *groupRepositoryImpl) Create(ctx context.Context, group *domain.Group) error {
	return conn(ctx, r.db).Create(group).Error
}

func (r *groupRepositoryImpl) CreateBatch(ctx context.Context, groups []*domain.Group) error {
	if len(groups) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&groups).Error
}

func (r *groupRepositoryImpl) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Group, error) {
	db := conn(ctx, r.db)
	var group domain.Group
	if err := db.
		Where("id = ? AND board_id IN (?)", id, ownedBoardIDs(db, ownerID)).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindByBoard lists the groups of a board ordered by sort order.
// A board the owner cannot see yields an empty list.
func (r *groupRepositoryImpl) FindByBoard(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Group, error) {
	db := conn(ctx, r.db)
	var groups []*domain.Group
	if err := db.
		Where("board_id = ? AND board_id IN (?)", boardID, ownedBoardIDs(db, ownerID)).
		Order("sort_order ASC, created_at ASC").
		Limit(MaxListSize).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepositoryImpl) Update(ctx context.Context, group *domain.Group) error {
	return rowsOrNotFound(conn(ctx, r.db).Model(group).Select("*").Updates(group))
}

func (r *groupRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return rowsOrNotFound(conn(ctx, r.db).Where("id = ?", id).Delete(&domain.Group{}))
}

func (r *groupRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	res := conn(ctx, r.db).Where("board_id = ?", boardID).Delete(&domain.Group{})
	return res.RowsAffected, res.Error
}

// DeleteOrphans removes groups whose board no longer exists
func (r *groupRepositoryImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	db := conn(ctx, r.db)
	res := db.Where("board_id NOT IN (?)", existingBoardIDs(db)).Delete(&domain.Group{})
	return res.RowsAffected, res.Error
}
