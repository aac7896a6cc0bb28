package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateWorkspaceRequest represents the request to create a workspace.
// Color and icon fall back to defaults when omitted.
type CreateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required,max=255" example:"Product Development"`
	Description *string `json:"description" example:"Main product development workspace"`
	Color       string  `json:"color" binding:"omitempty,max=20" example:"#6366f1"`
	Icon        string  `json:"icon" binding:"omitempty,max=32" example:"🚀"`
}

// UpdateWorkspaceRequest represents a partial update; nil fields are left unchanged
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,min=1,max=20"`
	Icon        *string `json:"icon" binding:"omitempty,min=1,max=32"`
}

// WorkspaceResponse represents the workspace response
type WorkspaceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewWorkspaceResponse converts a domain.Workspace to its response
func NewWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Color:       w.Color,
		Icon:        w.Icon,
		OwnerID:     w.OwnerID,
		CreatedAt:   w.CreatedAt,
	}
}

// NewWorkspaceResponses converts a slice; the result is never nil
func NewWorkspaceResponses(ws []*domain.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewWorkspaceResponse(w))
	}
	return out
}
