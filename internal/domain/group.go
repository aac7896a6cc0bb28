package domain

import "github.com/google/uuid"

// Group is a swimlane that partitions the tasks of a board
type Group struct {
	BaseModel
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Order   int       `gorm:"column:sort_order;type:int;not null;default:0" json:"order"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_groups_board_id" json:"board_id"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "groups"
}
