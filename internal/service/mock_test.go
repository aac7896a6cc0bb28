package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/repository"
)

// MockTransactor runs fn directly without a database
type MockTransactor struct {
	Calls int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	LockByIDFunc    func(ctx context.Context, id uuid.UUID) error
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	if m.LockByIDFunc != nil {
		return m.LockByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockWorkspaceRepository is a mock implementation of repository.WorkspaceRepository
type MockWorkspaceRepository struct {
	CreateFunc           func(ctx context.Context, workspace *domain.Workspace) error
	FindByIDForOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Workspace, error)
	FindByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Workspace, error)
	ExistsForOwnerFunc   func(ctx context.Context, ownerID uuid.UUID) (bool, error)
	UpdateFunc           func(ctx context.Context, workspace *domain.Workspace) error
	DeleteFunc           func(ctx context.Context, id, ownerID uuid.UUID) error
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workspace)
	}
	return nil
}

func (m *MockWorkspaceRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Workspace, error) {
	if m.FindByIDForOwnerFunc != nil {
		return m.FindByIDForOwnerFunc(ctx, id, ownerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockWorkspaceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Workspace, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	if m.ExistsForOwnerFunc != nil {
		return m.ExistsForOwnerFunc(ctx, ownerID)
	}
	return false, nil
}

func (m *MockWorkspaceRepository) Update(ctx context.Context, workspace *domain.Workspace) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, workspace)
	}
	return nil
}

func (m *MockWorkspaceRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return nil
}

func (m *MockWorkspaceRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of repository.BoardRepository
type MockBoardRepository struct {
	CreateFunc              func(ctx context.Context, board *domain.Board) error
	FindByIDForOwnerFunc    func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Board, error)
	FindByOwnerFunc         func(ctx context.Context, ownerID uuid.UUID, workspaceID *uuid.UUID) ([]*domain.Board, error)
	UpdateFunc              func(ctx context.Context, board *domain.Board) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	DeleteByWorkspaceIDFunc func(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Board, error) {
	if m.FindByIDForOwnerFunc != nil {
		return m.FindByIDForOwnerFunc(ctx, id, ownerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, workspaceID *uuid.UUID) ([]*domain.Board, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID, workspaceID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) DeleteByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	if m.DeleteByWorkspaceIDFunc != nil {
		return m.DeleteByWorkspaceIDFunc(ctx, workspaceID)
	}
	return 0, nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockGroupRepository is a mock implementation of repository.GroupRepository
type MockGroupRepository struct {
	CreateFunc           func(ctx context.Context, group *domain.Group) error
	CreateBatchFunc      func(ctx context.Context, groups []*domain.Group) error
	FindByIDForOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Group, error)
	FindByBoardFunc      func(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Group, error)
	UpdateFunc           func(ctx context.Context, group *domain.Group) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByBoardIDFunc  func(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteOrphansFunc    func(ctx context.Context) (int64, error)
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, group)
	}
	return nil
}

func (m *MockGroupRepository) CreateBatch(ctx context.Context, groups []*domain.Group) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, groups)
	}
	return nil
}

func (m *MockGroupRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Group, error) {
	if m.FindByIDForOwnerFunc != nil {
		return m.FindByIDForOwnerFunc(ctx, id, ownerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGroupRepository) FindByBoard(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Group, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID, ownerID)
	}
	return nil, nil
}

func (m *MockGroupRepository) Update(ctx context.Context, group *domain.Group) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, group)
	}
	return nil
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockGroupRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockGroupRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	if m.DeleteOrphansFunc != nil {
		return m.DeleteOrphansFunc(ctx)
	}
	return 0, nil
}

// MockStatusRepository is a mock implementation of repository.StatusRepository
type MockStatusRepository struct {
	CreateFunc           func(ctx context.Context, status *domain.Status) error
	CreateBatchFunc      func(ctx context.Context, statuses []*domain.Status) error
	FindByIDForOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Status, error)
	FindByBoardFunc      func(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Status, error)
	UpdateFunc           func(ctx context.Context, status *domain.Status) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByBoardIDFunc  func(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteOrphansFunc    func(ctx context.Context) (int64, error)
}

func (m *MockStatusRepository) Create(ctx context.Context, status *domain.Status) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, status)
	}
	return nil
}

func (m *MockStatusRepository) CreateBatch(ctx context.Context, statuses []*domain.Status) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, statuses)
	}
	return nil
}

func (m *MockStatusRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Status, error) {
	if m.FindByIDForOwnerFunc != nil {
		return m.FindByIDForOwnerFunc(ctx, id, ownerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockStatusRepository) FindByBoard(ctx context.Context, boardID, ownerID uuid.UUID) ([]*domain.Status, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID, ownerID)
	}
	return nil, nil
}

func (m *MockStatusRepository) Update(ctx context.Context, status *domain.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, status)
	}
	return nil
}

func (m *MockStatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockStatusRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockStatusRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	if m.DeleteOrphansFunc != nil {
		return m.DeleteOrphansFunc(ctx)
	}
	return 0, nil
}

// MockTaskRepository is a mock implementation of repository.TaskRepository
type MockTaskRepository struct {
	CreateFunc           func(ctx context.Context, task *domain.Task) error
	CreateBatchFunc      func(ctx context.Context, tasks []*domain.Task) error
	FindByIDForOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)
	ListFunc             func(ctx context.Context, filter repository.TaskFilter) ([]*domain.Task, error)
	UpdateFunc           func(ctx context.Context, task *domain.Task) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByBoardIDFunc  func(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteOrphansFunc    func(ctx context.Context) (int64, error)
	CountByPriorityFunc  func(ctx context.Context) (map[domain.Priority]int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tasks)
	}
	return nil
}

func (m *MockTaskRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	if m.FindByIDForOwnerFunc != nil {
		return m.FindByIDForOwnerFunc(ctx, id, ownerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]*domain.Task, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockTaskRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	if m.DeleteOrphansFunc != nil {
		return m.DeleteOrphansFunc(ctx)
	}
	return 0, nil
}

func (m *MockTaskRepository) CountByPriority(ctx context.Context) (map[domain.Priority]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx)
	}
	return nil, nil
}

// MockUserCache is a mock implementation of repository.UserCache
type MockUserCache struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetFunc    func(ctx context.Context, user *domain.User) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserCache) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserCache) Set(ctx context.Context, user *domain.User) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, user)
	}
	return nil
}

func (m *MockUserCache) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	GenerateFunc func(userID uuid.UUID) (string, error)
}

func (m *MockTokenIssuer) Generate(userID uuid.UUID) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	return "token-" + userID.String(), nil
}
