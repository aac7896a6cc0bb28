package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/auth"
	"taskflow-api/internal/database"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/repository"
	"taskflow-api/internal/response"
)

// stack wires every service against one in-memory sqlite database
type stack struct {
	db         *gorm.DB
	auth       AuthService
	workspaces WorkspaceService
	boards     BoardService
	groups     GroupService
	statuses   StatusService
	tasks      TaskService
	seed       SeedService
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })

	return newStackWith(db, repository.NewStatusRepository(db))
}

func newStackWith(db *gorm.DB, statusRepo repository.StatusRepository) *stack {
	logger := zap.NewNop()
	userRepo := repository.NewUserRepository(db)
	wsRepo := repository.NewWorkspaceRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tx := repository.NewTransactor(db)

	return &stack{
		db:         db,
		auth:       NewAuthService(userRepo, repository.NewUserCache(nil, 0), auth.NewTokenManager("test-secret", time.Hour), nil, logger),
		workspaces: NewWorkspaceService(wsRepo, boardRepo, tx, nil, logger),
		boards:     NewBoardService(wsRepo, boardRepo, groupRepo, statusRepo, taskRepo, tx, nil, logger),
		groups:     NewGroupService(wsRepo, boardRepo, groupRepo, nil, logger),
		statuses:   NewStatusService(wsRepo, boardRepo, statusRepo, nil, logger),
		tasks:      NewTaskService(wsRepo, boardRepo, groupRepo, statusRepo, taskRepo, nil, logger),
		seed:       NewSeedService(userRepo, wsRepo, boardRepo, groupRepo, statusRepo, taskRepo, tx, logger),
	}
}

func (s *stack) register(t *testing.T, email string) uuid.UUID {
	t.Helper()
	resp, err := s.auth.Register(context.Background(), &dto.RegisterRequest{Email: email, Name: "User", Password: "pw"})
	require.NoError(t, err)
	return resp.User.ID
}

func (s *stack) count(t *testing.T, model interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := s.db.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestScenario_BoardLifecycle(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	userID := s.register(t, "u@example.com")

	ws, err := s.workspaces.CreateWorkspace(ctx, userID, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)

	board, err := s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	require.NoError(t, err)

	statuses, err := s.statuses.ListStatuses(ctx, userID, board.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 4)
	for i, name := range []string{"To Do", "In Progress", "Review", "Done"} {
		assert.Equal(t, name, statuses[i].Name)
		assert.Equal(t, i, statuses[i].Order)
	}

	task, err := s.tasks.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "T", BoardID: board.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Nil(t, task.StatusID)
	assert.Nil(t, task.GroupID)

	require.NoError(t, s.boards.DeleteBoard(ctx, userID, board.ID))

	assert.Zero(t, s.count(t, &domain.Status{}, "board_id = ?", board.ID))
	assert.Zero(t, s.count(t, &domain.Task{}, "board_id = ?", board.ID))

	tasks, err := s.tasks.ListTasks(ctx, userID, &dto.ListTasksQuery{BoardID: board.ID.String()})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	err = s.boards.DeleteBoard(ctx, userID, board.ID)
	assert.Equal(t, response.ErrCodeNotFound, errCode(err))
}

func TestScenario_WorkspaceDeleteIsSingleLevel(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	userID := s.register(t, "u@example.com")

	ws, err := s.workspaces.CreateWorkspace(ctx, userID, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)
	board, err := s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	require.NoError(t, err)
	_, err = s.groups.CreateGroup(ctx, userID, &dto.CreateGroupRequest{Name: "G", BoardID: board.ID})
	require.NoError(t, err)
	_, err = s.tasks.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "T", BoardID: board.ID})
	require.NoError(t, err)

	require.NoError(t, s.workspaces.DeleteWorkspace(ctx, userID, ws.ID))

	assert.Zero(t, s.count(t, &domain.Workspace{}, "id = ?", ws.ID))
	assert.Zero(t, s.count(t, &domain.Board{}, "workspace_id = ?", ws.ID))
	assert.EqualValues(t, 1, s.count(t, &domain.Group{}, "board_id = ?", board.ID))
	assert.EqualValues(t, 4, s.count(t, &domain.Status{}, "board_id = ?", board.ID))
	assert.EqualValues(t, 1, s.count(t, &domain.Task{}, "board_id = ?", board.ID))

	// the leftovers are unreachable through the API
	tasks, err := s.tasks.ListTasks(ctx, userID, &dto.ListTasksQuery{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestScenario_ForeignWorkspace(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	owner := s.register(t, "owner@example.com")
	intruder := s.register(t, "intruder@example.com")

	ws, err := s.workspaces.CreateWorkspace(ctx, owner, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)

	_, err = s.boards.CreateBoard(ctx, intruder, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	assert.Equal(t, response.ErrCodeNotFound, errCode(err))
	assert.Zero(t, s.count(t, &domain.Board{}, ""))
	assert.Zero(t, s.count(t, &domain.Status{}, ""))

	board, err := s.boards.CreateBoard(ctx, owner, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	require.NoError(t, err)

	_, err = s.boards.GetBoard(ctx, intruder, board.ID)
	assert.Equal(t, response.ErrCodeNotFound, errCode(err))
	_, err = s.tasks.CreateTask(ctx, intruder, &dto.CreateTaskRequest{Title: "T", BoardID: board.ID})
	assert.Equal(t, response.ErrCodeNotFound, errCode(err))
	err = s.workspaces.DeleteWorkspace(ctx, intruder, ws.ID)
	assert.Equal(t, response.ErrCodeNotFound, errCode(err))

	statuses, err := s.statuses.ListStatuses(ctx, intruder, board.ID)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

type failingStatusRepo struct {
	repository.StatusRepository
}

func (failingStatusRepo) CreateBatch(context.Context, []*domain.Status) error {
	return errors.New("insert failed")
}

func TestScenario_BoardCreateRollsBack(t *testing.T) {
	base := newStack(t)
	ctx := context.Background()
	userID := base.register(t, "u@example.com")
	ws, err := base.workspaces.CreateWorkspace(ctx, userID, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)

	s := newStackWith(base.db, failingStatusRepo{repository.NewStatusRepository(base.db)})
	_, err = s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	assert.Equal(t, response.ErrCodeInternal, errCode(err))
	assert.Zero(t, s.count(t, &domain.Board{}, ""))
}

func TestScenario_SearchAndFilter(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	userID := s.register(t, "u@example.com")
	ws, err := s.workspaces.CreateWorkspace(ctx, userID, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)
	b1, err := s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B1", WorkspaceID: ws.ID})
	require.NoError(t, err)
	b2, err := s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B2", WorkspaceID: ws.ID})
	require.NoError(t, err)

	desc := "Rotate AUTH keys"
	for _, req := range []dto.CreateTaskRequest{
		{Title: "Implement Authentication", BoardID: b1.ID, Priority: domain.PriorityHigh, Order: 0},
		{Title: "Key rotation", Description: &desc, BoardID: b1.ID, Priority: domain.PriorityLow, Order: 1},
		{Title: "Write docs", BoardID: b1.ID, Priority: domain.PriorityHigh, Order: 2},
		{Title: "auth on board two", BoardID: b2.ID, Priority: domain.PriorityHigh, Order: 3},
	} {
		_, err := s.tasks.CreateTask(ctx, userID, &req)
		require.NoError(t, err)
	}

	found, err := s.tasks.ListTasks(ctx, userID, &dto.ListTasksQuery{Search: "auth"})
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "Implement Authentication", found[0].Title)
	assert.Equal(t, "Key rotation", found[1].Title)
	assert.Equal(t, "auth on board two", found[2].Title)

	found, err = s.tasks.ListTasks(ctx, userID, &dto.ListTasksQuery{Priority: "high", BoardID: b1.ID.String()})
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, task := range found {
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, b1.ID, task.BoardID)
	}
}

func TestScenario_PartialTaskUpdate(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	userID := s.register(t, "u@example.com")
	ws, err := s.workspaces.CreateWorkspace(ctx, userID, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)
	board, err := s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	require.NoError(t, err)

	desc := "details"
	created, err := s.tasks.CreateTask(ctx, userID, &dto.CreateTaskRequest{
		Title: "Before", Description: &desc, BoardID: board.ID, Priority: domain.PriorityCritical, Order: 7,
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.tasks.UpdateTask(ctx, userID, created.ID, &dto.UpdateTaskRequest{Title: strPtr("X")})
	require.NoError(t, err)

	stored, err := s.tasks.GetTask(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", stored.Title)
	assert.Equal(t, desc, *stored.Description)
	assert.Equal(t, domain.PriorityCritical, stored.Priority)
	assert.Equal(t, 7, stored.Order)
	assert.True(t, stored.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, stored.CreatedAt.Equal(created.CreatedAt))
	assert.Equal(t, updated.Title, stored.Title)
}

func TestScenario_UpdateStatusAfterGroupDeleted(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	userID := s.register(t, "u@example.com")
	ws, err := s.workspaces.CreateWorkspace(ctx, userID, &dto.CreateWorkspaceRequest{Name: "W"})
	require.NoError(t, err)
	board, err := s.boards.CreateBoard(ctx, userID, &dto.CreateBoardRequest{Name: "B", WorkspaceID: ws.ID})
	require.NoError(t, err)
	statuses, err := s.statuses.ListStatuses(ctx, userID, board.ID)
	require.NoError(t, err)
	group, err := s.groups.CreateGroup(ctx, userID, &dto.CreateGroupRequest{Name: "G", BoardID: board.ID})
	require.NoError(t, err)

	task, err := s.tasks.CreateTask(ctx, userID, &dto.CreateTaskRequest{
		Title: "T", BoardID: board.ID, GroupID: &group.ID, StatusID: &statuses[0].ID,
	})
	require.NoError(t, err)
	require.NoError(t, s.groups.DeleteGroup(ctx, userID, group.ID))

	updated, err := s.tasks.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{StatusID: &statuses[1].ID})
	require.NoError(t, err)
	assert.Equal(t, statuses[1].ID, *updated.StatusID)
	assert.Equal(t, group.ID, *updated.GroupID)

	// an explicitly sent reference is still checked
	_, err = s.tasks.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{GroupID: &group.ID})
	assert.Equal(t, response.ErrCodeValidation, errCode(err))
}

func TestScenario_SeedDemoData(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	userID := s.register(t, "u@example.com")

	msg, err := s.seed.SeedDemoData(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, SeedCreatedMessage, msg)

	assert.EqualValues(t, 2, s.count(t, &domain.Workspace{}, "owner_id = ?", userID))
	assert.EqualValues(t, 3, s.count(t, &domain.Board{}, ""))
	assert.EqualValues(t, 12, s.count(t, &domain.Status{}, ""))
	assert.EqualValues(t, 3, s.count(t, &domain.Group{}, ""))
	assert.EqualValues(t, 7, s.count(t, &domain.Task{}, ""))

	tasks, err := s.tasks.ListTasks(ctx, userID, &dto.ListTasksQuery{Priority: "critical"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Design database schema", tasks[0].Title)

	msg, err = s.seed.SeedDemoData(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, SeedExistsMessage, msg)
	assert.EqualValues(t, 2, s.count(t, &domain.Workspace{}, "owner_id = ?", userID))
}

func TestScenario_ConcurrentSeedRunsOnce(t *testing.T) {
	s := newStack(t)
	userID := s.register(t, "u@example.com")

	const callers = 4
	messages := make(chan string, callers)
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := s.seed.SeedDemoData(context.Background(), userID)
			messages <- msg
			errs <- err
		}()
	}
	wg.Wait()
	close(messages)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	created := 0
	for msg := range messages {
		if msg == SeedCreatedMessage {
			created++
		}
	}
	assert.Equal(t, 1, created)
	assert.EqualValues(t, 2, s.count(t, &domain.Workspace{}, "owner_id = ?", userID))
	assert.EqualValues(t, 7, s.count(t, &domain.Task{}, ""))
}

func TestScenario_SeedUnknownUser(t *testing.T) {
	s := newStack(t)
	_, err := s.seed.SeedDemoData(context.Background(), uuid.New())
	assert.Equal(t, response.ErrCodeNotFound, errCode(err))
	assert.Zero(t, s.count(t, &domain.Workspace{}, ""))
}

func TestScenario_DuplicateRegistration(t *testing.T) {
	s := newStack(t)
	s.register(t, "dup@example.com")

	_, err := s.auth.Register(context.Background(), &dto.RegisterRequest{Email: "dup@example.com", Name: "Other", Password: "pw"})
	assert.Equal(t, response.ErrCodeAlreadyExists, errCode(err))

	resp, err := s.auth.Login(context.Background(), &dto.LoginRequest{Email: "dup@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
