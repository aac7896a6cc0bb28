package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Name        string    `json:"name" binding:"required,max=255" example:"Q1 Sprint Planning"`
	Description *string   `json:"description" example:"Sprint planning for Q1"`
	Color       string    `json:"color" binding:"omitempty,max=20" example:"#6366f1"`
	Icon        string    `json:"icon" binding:"omitempty,max=32" example:"📋"`
	WorkspaceID uuid.UUID `json:"workspace_id" binding:"required"`
}

// UpdateBoardRequest represents a partial update of a board.
// The parent workspace cannot be changed.
type UpdateBoardRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,min=1,max=20"`
	Icon        *string `json:"icon" binding:"omitempty,min=1,max=32"`
}

// BoardResponse represents the board response
type BoardResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBoardResponse converts a domain.Board to its response
func NewBoardResponse(b *domain.Board) BoardResponse {
	return BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Color:       b.Color,
		Icon:        b.Icon,
		WorkspaceID: b.WorkspaceID,
		CreatedAt:   b.CreatedAt,
	}
}

// NewBoardResponses converts a slice; the result is never nil
func NewBoardResponses(bs []*domain.Board) []BoardResponse {
	out := make([]BoardResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, NewBoardResponse(b))
	}
	return out
}
