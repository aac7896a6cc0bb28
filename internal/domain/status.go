package domain

import "github.com/google/uuid"

// Status is a workflow column of a board
type Status struct {
	BaseModel
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Color   string    `gorm:"type:varchar(20);not null" json:"color"`
	Order   int       `gorm:"column:sort_order;type:int;not null;default:0" json:"order"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_statuses_board_id" json:"board_id"`
}

// TableName specifies the table name for Status
func (Status) TableName() string {
	return "statuses"
}
