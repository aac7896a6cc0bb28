package domain

import "github.com/google/uuid"

// Board represents a kanban board within a workspace.
// Children (groups, statuses, tasks) reference it by BoardID only; there are
// no database foreign keys so that a workspace delete can leave them in place.
type Board struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Color       string    `gorm:"type:varchar(20);not null" json:"color"`
	Icon        string    `gorm:"type:varchar(32);not null" json:"icon"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index:idx_boards_workspace_id" json:"workspace_id"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
