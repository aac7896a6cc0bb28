package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

func titles(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestTaskRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	otherBoard := f.addBoard(t, "other")
	stranger := newFixture(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	groupID := uuid.New()
	statusID := uuid.New()
	high := domain.PriorityHigh

	require.NoError(t, repo.CreateBatch(ctx, []*domain.Task{
		{Title: "Implement Auth", Priority: domain.PriorityHigh, BoardID: f.board.ID, GroupID: &groupID, Order: 2},
		{Title: "Design dashboard", Description: strPtr("needs AUTH checks"), Priority: domain.PriorityMedium, BoardID: f.board.ID, StatusID: &statusID, Order: 1},
		{Title: "Fix login bug", Priority: domain.PriorityHigh, BoardID: otherBoard.ID, Order: 3},
		{Title: "Write docs", Priority: domain.PriorityLow, BoardID: f.board.ID, Order: 0},
		{Title: "auth for stranger", Priority: domain.PriorityHigh, BoardID: stranger.board.ID},
	}))

	tests := []struct {
		name   string
		filter TaskFilter
		want   []string
	}{
		{"all of owner, ordered", TaskFilter{OwnerID: f.ownerID}, []string{"Write docs", "Design dashboard", "Implement Auth", "Fix login bug"}},
		{"board", TaskFilter{OwnerID: f.ownerID, BoardID: &f.board.ID}, []string{"Write docs", "Design dashboard", "Implement Auth"}},
		{"priority and board", TaskFilter{OwnerID: f.ownerID, BoardID: &f.board.ID, Priority: &high}, []string{"Implement Auth"}},
		{"group", TaskFilter{OwnerID: f.ownerID, GroupID: &groupID}, []string{"Implement Auth"}},
		{"status", TaskFilter{OwnerID: f.ownerID, StatusID: &statusID}, []string{"Design dashboard"}},
		{"search title or description", TaskFilter{OwnerID: f.ownerID, Search: "auth"}, []string{"Design dashboard", "Implement Auth"}},
		{"search no match", TaskFilter{OwnerID: f.ownerID, Search: "zzz"}, []string{}},
		{"foreign board", TaskFilter{OwnerID: f.ownerID, BoardID: &stranger.board.ID}, []string{}},
		{"unknown board", TaskFilter{OwnerID: f.ownerID, BoardID: ptrUUID(uuid.New())}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestTaskRepository_SearchFoldsNonASCII(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &domain.Task{Title: "ÉCOLE setup", Priority: domain.PriorityMedium, BoardID: f.board.ID}
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Create(ctx, &domain.Task{
		Title: "Other", Description: strPtr("ПРОВЕРКА доступа"), Priority: domain.PriorityLow, BoardID: f.board.ID,
	}))

	tests := []struct {
		search string
		want   []string
	}{
		{"école", []string{"ÉCOLE setup"}},
		{"ÉCOLE", []string{"ÉCOLE setup"}},
		{"проверка", []string{"Other"}},
		{"ecole", []string{}},
	}
	for _, tt := range tests {
		got, err := repo.List(ctx, TaskFilter{OwnerID: f.ownerID, Search: tt.search})
		require.NoError(t, err)
		assert.Equal(t, tt.want, titles(got), "search %q", tt.search)
	}

	// renaming refreshes the folded text
	task.Title = "Über review"
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.List(ctx, TaskFilter{OwnerID: f.ownerID, Search: "über"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Über review"}, titles(got))

	got, err = repo.List(ctx, TaskFilter{OwnerID: f.ownerID, Search: "école"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTaskRepository_SearchWildcardsAreLiteral(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []*domain.Task{
		{Title: "100% done", Priority: domain.PriorityLow, BoardID: f.board.ID},
		{Title: "1000 items", Priority: domain.PriorityLow, BoardID: f.board.ID},
		{Title: "snake_case", Priority: domain.PriorityLow, BoardID: f.board.ID},
		{Title: "snakeXcase", Priority: domain.PriorityLow, BoardID: f.board.ID},
	}))

	got, err := repo.List(ctx, TaskFilter{OwnerID: f.ownerID, Search: "0%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% done"}, titles(got))

	got, err = repo.List(ctx, TaskFilter{OwnerID: f.ownerID, Search: "e_c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"snake_case"}, titles(got))
}

func TestTaskRepository_ListCapped(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	tasks := make([]*domain.Task, 0, MaxListSize+5)
	for i := 0; i < MaxListSize+5; i++ {
		tasks = append(tasks, &domain.Task{Title: "t", Priority: domain.PriorityLow, BoardID: f.board.ID})
	}
	require.NoError(t, db.CreateInBatches(tasks, 200).Error)

	got, err := repo.List(ctx, TaskFilter{OwnerID: f.ownerID})
	require.NoError(t, err)
	assert.Len(t, got, MaxListSize)
}

func TestTaskRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &domain.Task{Title: "Before", Priority: domain.PriorityMedium, BoardID: f.board.ID}
	require.NoError(t, repo.Create(ctx, task))
	created := task.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	task.Title = "After"
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.FindByIDForOwner(ctx, task.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.True(t, got.UpdatedAt.After(created))
	assert.WithinDuration(t, task.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestTaskRepository_DeleteAndCount(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []*domain.Task{
		{Title: "a", Priority: domain.PriorityHigh, BoardID: f.board.ID},
		{Title: "b", Priority: domain.PriorityHigh, BoardID: f.board.ID},
		{Title: "c", Priority: domain.PriorityLow, BoardID: f.board.ID},
	}))

	counts, err := repo.CountByPriority(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.PriorityHigh])
	assert.Equal(t, int64(1), counts[domain.PriorityLow])
	assert.Zero(t, counts[domain.PriorityCritical])

	n, err := repo.DeleteByBoardID(ctx, f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), gorm.ErrRecordNotFound)
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }
