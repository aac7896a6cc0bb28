package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateStatusRequest represents the request to create a status column
type CreateStatusRequest struct {
	Name    string    `json:"name" binding:"required,max=255" example:"Blocked"`
	Color   string    `json:"color" binding:"required,max=20" example:"#ef4444"`
	Order   int       `json:"order" example:"4"`
	BoardID uuid.UUID `json:"board_id" binding:"required"`
}

// UpdateStatusRequest represents a partial update of a status
type UpdateStatusRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Color *string `json:"color" binding:"omitempty,min=1,max=20"`
	Order *int    `json:"order"`
}

// StatusResponse represents the status response
type StatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Order     int       `json:"order"`
	BoardID   uuid.UUID `json:"board_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStatusResponse converts a domain.Status to its response
func NewStatusResponse(s *domain.Status) StatusResponse {
	return StatusResponse{
		ID:        s.ID,
		Name:      s.Name,
		Color:     s.Color,
		Order:     s.Order,
		BoardID:   s.BoardID,
		CreatedAt: s.CreatedAt,
	}
}

// NewStatusResponses converts a slice; the result is never nil
func NewStatusResponses(ss []*domain.Status) []StatusResponse {
	out := make([]StatusResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewStatusResponse(s))
	}
	return out
}
