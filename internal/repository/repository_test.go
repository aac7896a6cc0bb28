package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/database"
	"taskflow-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

type fixture struct {
	db        *gorm.DB
	ownerID   uuid.UUID
	workspace *domain.Workspace
	board     *domain.Board
}

// newFixture creates an owner with one workspace and one board
func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()

	user := &domain.User{Email: uuid.NewString() + "@example.com", Name: "Owner", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	ws := &domain.Workspace{Name: "WS", Color: "#6366f1", Icon: "📁", OwnerID: user.ID}
	require.NoError(t, NewWorkspaceRepository(db).Create(ctx, ws))

	board := &domain.Board{Name: "Board", Color: "#6366f1", Icon: "📋", WorkspaceID: ws.ID}
	require.NoError(t, NewBoardRepository(db).Create(ctx, board))

	return &fixture{db: db, ownerID: user.ID, workspace: ws, board: board}
}

func (f *fixture) addBoard(t *testing.T, name string) *domain.Board {
	t.Helper()
	board := &domain.Board{Name: name, Color: "#6366f1", Icon: "📋", WorkspaceID: f.workspace.ID}
	require.NoError(t, NewBoardRepository(f.db).Create(context.Background(), board))
	return board
}

func strPtr(s string) *string { return &s }
