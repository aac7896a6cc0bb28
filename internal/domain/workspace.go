package domain

import "github.com/google/uuid"

// Workspace is the top-level container owned by exactly one user
type Workspace struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Color       string    `gorm:"type:varchar(20);not null" json:"color"`
	Icon        string    `gorm:"type:varchar(32);not null" json:"icon"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_workspaces_owner_id" json:"owner_id"`
}

// TableName specifies the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
