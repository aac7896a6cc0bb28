package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateTaskRequest represents the request to create a task.
// Priority defaults to medium when omitted.
// start_date must not be after due_date when both are provided.
type CreateTaskRequest struct {
	Title       string          `json:"title" binding:"required,max=500" example:"Implement user authentication"`
	Description *string         `json:"description" example:"Add JWT-based authentication"`
	Priority    domain.Priority `json:"priority" binding:"omitempty,oneof=low medium high critical" example:"high"`
	StatusID    *uuid.UUID      `json:"status_id"`
	GroupID     *uuid.UUID      `json:"group_id"`
	StartDate   *time.Time      `json:"start_date" example:"2024-01-01T00:00:00Z"`
	DueDate     *time.Time      `json:"due_date" example:"2024-01-15T00:00:00Z"`
	Order       int             `json:"order" example:"0"`
	BoardID     uuid.UUID       `json:"board_id" binding:"required"`
}

// UpdateTaskRequest represents a partial update of a task; nil fields are left unchanged.
// The board of a task cannot be changed.
type UpdateTaskRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string          `json:"description"`
	Priority    *domain.Priority `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	StatusID    *uuid.UUID       `json:"status_id"`
	GroupID     *uuid.UUID       `json:"group_id"`
	StartDate   *time.Time       `json:"start_date"`
	DueDate     *time.Time       `json:"due_date"`
	Order       *int             `json:"order"`
}

// ListTasksQuery holds the query-string filters of GET /tasks.
// IDs stay strings here so malformed values surface as validation errors.
type ListTasksQuery struct {
	BoardID  string `form:"board_id"`
	GroupID  string `form:"group_id"`
	StatusID string `form:"status_id"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high critical"`
	Search   string `form:"search" binding:"max=200"`
}

// TaskResponse represents the task response
type TaskResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority"`
	StatusID    *uuid.UUID      `json:"status_id"`
	GroupID     *uuid.UUID      `json:"group_id"`
	StartDate   *time.Time      `json:"start_date"`
	DueDate     *time.Time      `json:"due_date"`
	Order       int             `json:"order"`
	BoardID     uuid.UUID       `json:"board_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTaskResponse converts a domain.Task to its response
func NewTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		StatusID:    t.StatusID,
		GroupID:     t.GroupID,
		StartDate:   t.StartDate,
		DueDate:     t.DueDate,
		Order:       t.Order,
		BoardID:     t.BoardID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTaskResponses converts a slice; the result is never nil
func NewTaskResponses(ts []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
