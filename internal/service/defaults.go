package service

import "taskflow-api/internal/domain"

// Defaults for optional attributes
const (
	DefaultWorkspaceColor = "#6366f1"
	DefaultWorkspaceIcon  = "📁"
	DefaultBoardColor     = "#6366f1"
	DefaultBoardIcon      = "📋"
)

type statusTemplate struct {
	Name  string
	Color string
}

// defaultStatuses are created with every new board, in this order
var defaultStatuses = []statusTemplate{
	{Name: "To Do", Color: "#94a3b8"},
	{Name: "In Progress", Color: "#3b82f6"},
	{Name: "Review", Color: "#a855f7"},
	{Name: "Done", Color: "#10b981"},
}

func buildStatuses(board *domain.Board, templates []statusTemplate) []*domain.Status {
	statuses := make([]*domain.Status, len(templates))
	for i, tmpl := range templates {
		statuses[i] = &domain.Status{
			Name:    tmpl.Name,
			Color:   tmpl.Color,
			Order:   i,
			BoardID: board.ID,
		}
	}
	return statuses
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
