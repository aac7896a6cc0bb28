package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority represents the urgency of a task
type Priority string

// Priority constants
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Task is a unit of work on a board
type Task struct {
	BaseModel
	Title       string     `gorm:"type:varchar(500);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Priority    Priority   `gorm:"type:varchar(20);not null;default:'medium';index:idx_tasks_priority" json:"priority"`
	StatusID    *uuid.UUID `gorm:"type:uuid;index:idx_tasks_status_id" json:"status_id"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index:idx_tasks_group_id" json:"group_id"`
	StartDate   *time.Time `gorm:"type:timestamp" json:"start_date"`
	DueDate     *time.Time `gorm:"type:timestamp" json:"due_date"`
	Order       int        `gorm:"column:sort_order;type:int;not null;default:0" json:"order"`
	BoardID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_board_id" json:"board_id"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	// SearchText is the lower-cased title and description. sqlite's LOWER
	// folds ASCII only, so searches there match against this column.
	SearchText string `gorm:"type:text;not null;default:''" json:"-"`
}

// BeforeSave refreshes SearchText on every create and update
func (t *Task) BeforeSave(tx *gorm.DB) error {
	t.SearchText = FoldSearchText(t.Title, t.Description)
	return nil
}

// FoldSearchText lower-cases title and description for substring search
func FoldSearchText(title string, description *string) string {
	if description == nil {
		return strings.ToLower(title)
	}
	return strings.ToLower(title + "\n" + *description)
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
