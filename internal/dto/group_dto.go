package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name    string    `json:"name" binding:"required,max=255" example:"Frontend"`
	Order   int       `json:"order" example:"0"`
	BoardID uuid.UUID `json:"board_id" binding:"required"`
}

// UpdateGroupRequest represents a partial update of a group
type UpdateGroupRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Order *int    `json:"order"`
}

// GroupResponse represents the group response
type GroupResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	BoardID   uuid.UUID `json:"board_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGroupResponse converts a domain.Group to its response
func NewGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Order:     g.Order,
		BoardID:   g.BoardID,
		CreatedAt: g.CreatedAt,
	}
}

// NewGroupResponses converts a slice; the result is never nil
func NewGroupResponses(gs []*domain.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, NewGroupResponse(g))
	}
	return out
}
