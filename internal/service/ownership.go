package service

import (
	"context"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/repository"
)

// ownership resolves parents on behalf of a requester. A parent that does not
// exist and one owned by someone else produce the same NotFound error.
type ownership struct {
	workspaces repository.WorkspaceRepository
	boards     repository.BoardRepository
}

func (o ownership) workspace(ctx context.Context, id, userID uuid.UUID) (*domain.Workspace, error) {
	ws, err := o.workspaces.FindByIDForOwner(ctx, id, userID)
	if err != nil {
		return nil, lookupError(err, "Workspace")
	}
	return ws, nil
}

func (o ownership) board(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error) {
	board, err := o.boards.FindByIDForOwner(ctx, id, userID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}
	return board, nil
}
