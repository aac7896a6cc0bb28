package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// TaskFilter narrows a task listing. Set fields are AND-combined.
// Search matches title or description case-insensitively; LIKE wildcards
// in the term are matched literally.
type TaskFilter struct {
	OwnerID  uuid.UUID
	BoardID  *uuid.UUID
	GroupID  *uuid.UUID
	StatusID *uuid.UUID
	Priority *domain.Priority
	Search   string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	CreateBatch(ctx context.Context, tasks []*domain.Task) error
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
	CountByPriority(ctx context.Context) (map[domain.Priority]int64, error)
}

type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return conn(ctx, r.db).Create(task).Error
}

func (r *taskRepositoryImpl) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&tasks).Error
}

func (r *taskRepositoryImpl) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	db := conn(ctx, r.db)
	var task domain.Task
	if err := db.
		Where("id = ? AND board_id IN (?)", id, ownedBoardIDs(db, ownerID)).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the owner's tasks matching filter, ordered by sort order and
// capped at MaxListSize.
func (r *taskRepositoryImpl) List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error) {
	db := conn(ctx, r.db)
	query := db.Where("board_id IN (?)", ownedBoardIDs(db, filter.OwnerID))

	if filter.BoardID != nil {
		query = query.Where("board_id = ?", *filter.BoardID)
	}
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Search != "" {
		query = searchScope(query, filter.Search)
	}

	var tasks []*domain.Task
	if err := query.
		Order("sort_order ASC, created_at ASC").
		Limit(MaxListSize).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// searchScope matches term against title or description. postgres folds
// case with ILIKE; other drivers match the pre-folded search_text column.
func searchScope(query *gorm.DB, term string) *gorm.DB {
	pattern := containsPattern(term)
	if query.Dialector.Name() == "postgres" {
		return query.Where(
			"(title ILIKE ? ESCAPE '\\' OR COALESCE(description, '') ILIKE ? ESCAPE '\\')",
			pattern, pattern,
		)
	}
	return query.Where("search_text LIKE ? ESCAPE '\\'", pattern)
}

// Update writes all columns and refreshes UpdatedAt
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	return rowsOrNotFound(conn(ctx, r.db).Model(task).Select("*").Updates(task))
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return rowsOrNotFound(conn(ctx, r.db).Where("id = ?", id).Delete(&domain.Task{}))
}

func (r *taskRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	res := conn(ctx, r.db).Where("board_id = ?", boardID).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}

// DeleteOrphans removes tasks whose board no longer exists
func (r *taskRepositoryImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	db := conn(ctx, r.db)
	res := db.Where("board_id NOT IN (?)", existingBoardIDs(db)).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}

// CountByPriority returns the number of stored tasks per priority
func (r *taskRepositoryImpl) CountByPriority(ctx context.Context) (map[domain.Priority]int64, error) {
	var rows []struct {
		Priority domain.Priority
		Count    int64
	}
	if err := conn(ctx, r.db).
		Model(&domain.Task{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.Priority]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}
