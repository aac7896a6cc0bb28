package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/repository"
)

// Seed outcome messages
const (
	SeedCreatedMessage = "Demo data created successfully"
	SeedExistsMessage  = "Demo data already exists"
)

// SeedService populates an account with demo content
type SeedService interface {
	SeedDemoData(ctx context.Context, userID uuid.UUID) (string, error)
}

type seedServiceImpl struct {
	userRepo      repository.UserRepository
	workspaceRepo repository.WorkspaceRepository
	boardRepo     repository.BoardRepository
	groupRepo     repository.GroupRepository
	statusRepo    repository.StatusRepository
	taskRepo      repository.TaskRepository
	tx            repository.Transactor
	logger        *zap.Logger
	now           func() time.Time
}

// NewSeedService creates a new instance of SeedService
func NewSeedService(
	userRepo repository.UserRepository,
	workspaceRepo repository.WorkspaceRepository,
	boardRepo repository.BoardRepository,
	groupRepo repository.GroupRepository,
	statusRepo repository.StatusRepository,
	taskRepo repository.TaskRepository,
	tx repository.Transactor,
	logger *zap.Logger,
) SeedService {
	return &seedServiceImpl{
		userRepo:      userRepo,
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		groupRepo:     groupRepo,
		statusRepo:    statusRepo,
		taskRepo:      taskRepo,
		tx:            tx,
		logger:        logger,
		now:           time.Now,
	}
}

// SeedDemoData creates two workspaces, three boards with their statuses,
// three groups and seven tasks, and returns the outcome message. Accounts
// that already own a workspace are left untouched.
func (s *seedServiceImpl) SeedDemoData(ctx context.Context, userID uuid.UUID) (string, error) {
	message := SeedCreatedMessage
	if err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// concurrent seeds of one account queue on the user row
		if err := s.userRepo.LockByID(ctx, userID); err != nil {
			return lookupError(err, "User")
		}
		exists, err := s.workspaceRepo.ExistsForOwner(ctx, userID)
		if err != nil {
			return internalError("Failed to check existing workspaces", err)
		}
		if exists {
			message = SeedExistsMessage
			return nil
		}
		return s.seed(ctx, userID)
	}); err != nil {
		return "", passthrough(err, "Failed to create demo data")
	}

	if message == SeedCreatedMessage {
		s.logger.Info("Demo data created", zap.String("user_id", userID.String()))
	}
	return message, nil
}

func (s *seedServiceImpl) seed(ctx context.Context, userID uuid.UUID) error {
	product := &domain.Workspace{
		Name:        "Product Development",
		Description: strPtr("Main product workspace"),
		Color:       "#6366f1",
		Icon:        "🚀",
		OwnerID:     userID,
	}
	marketing := &domain.Workspace{
		Name:        "Marketing",
		Description: strPtr("Marketing campaigns and content"),
		Color:       "#ec4899",
		Icon:        "📢",
		OwnerID:     userID,
	}
	for _, ws := range []*domain.Workspace{product, marketing} {
		if err := s.workspaceRepo.Create(ctx, ws); err != nil {
			return err
		}
	}

	sprint := &domain.Board{
		Name:        "Q1 Sprint Planning",
		Description: strPtr("Sprint planning for Q1 2025"),
		Color:       "#6366f1",
		Icon:        "📋",
		WorkspaceID: product.ID,
	}
	bugs := &domain.Board{
		Name:        "Bug Tracking",
		Description: strPtr("Track and resolve bugs"),
		Color:       "#ef4444",
		Icon:        "🐛",
		WorkspaceID: product.ID,
	}
	content := &domain.Board{
		Name:        "Content Calendar",
		Description: strPtr("Social media and blog content"),
		Color:       "#ec4899",
		Icon:        "📅",
		WorkspaceID: marketing.ID,
	}
	for _, b := range []*domain.Board{sprint, bugs, content} {
		if err := s.boardRepo.Create(ctx, b); err != nil {
			return err
		}
	}

	sprintStatuses := buildStatuses(sprint, defaultStatuses)
	statuses := append([]*domain.Status{}, sprintStatuses...)
	statuses = append(statuses, buildStatuses(bugs, []statusTemplate{
		{Name: "New", Color: "#94a3b8"},
		{Name: "In Progress", Color: "#3b82f6"},
		{Name: "Testing", Color: "#f59e0b"},
		{Name: "Resolved", Color: "#10b981"},
	})...)
	statuses = append(statuses, buildStatuses(content, []statusTemplate{
		{Name: "Idea", Color: "#94a3b8"},
		{Name: "Draft", Color: "#f59e0b"},
		{Name: "Scheduled", Color: "#3b82f6"},
		{Name: "Published", Color: "#10b981"},
	})...)
	if err := s.statusRepo.CreateBatch(ctx, statuses); err != nil {
		return err
	}

	frontend := &domain.Group{Name: "Frontend", Order: 0, BoardID: sprint.ID}
	backend := &domain.Group{Name: "Backend", Order: 1, BoardID: sprint.ID}
	design := &domain.Group{Name: "Design", Order: 2, BoardID: sprint.ID}
	if err := s.groupRepo.CreateBatch(ctx, []*domain.Group{frontend, backend, design}); err != nil {
		return err
	}

	todo, inProgress, review, done := sprintStatuses[0], sprintStatuses[1], sprintStatuses[2], sprintStatuses[3]
	now := s.now().UTC()
	days := func(n int) *time.Time {
		t := now.AddDate(0, 0, n)
		return &t
	}

	task := func(g *domain.Group, st *domain.Status, order int, title, desc string, p domain.Priority, start, due *time.Time) *domain.Task {
		return &domain.Task{
			Title:       title,
			Description: strPtr(desc),
			Priority:    p,
			StatusID:    &st.ID,
			GroupID:     &g.ID,
			StartDate:   start,
			DueDate:     due,
			Order:       order,
			BoardID:     sprint.ID,
		}
	}

	tasks := []*domain.Task{
		task(frontend, inProgress, 0, "Implement user authentication",
			"Add JWT-based authentication with login/logout", domain.PriorityHigh, days(0), days(5)),
		task(frontend, review, 1, "Build dashboard layout",
			"Create responsive dashboard with sidebar and topbar", domain.PriorityHigh, days(0), days(3)),
		task(frontend, todo, 2, "Add drag and drop functionality",
			"Implement drag and drop for tasks", domain.PriorityMedium, nil, days(7)),
		task(backend, done, 0, "Design database schema",
			"Create normalized schema for MySQL portability", domain.PriorityCritical, days(-2), days(0)),
		task(backend, inProgress, 1, "Implement REST API endpoints",
			"Build CRUD endpoints for all entities", domain.PriorityHigh, days(0), days(4)),
		task(design, done, 0, "Create design system",
			"Define colors, typography, and component styles", domain.PriorityMedium, days(-3), days(-1)),
		task(design, review, 1, "Design table view mockups",
			"Create high-fidelity mockups for table view", domain.PriorityMedium, days(0), days(2)),
	}
	return s.taskRepo.CreateBatch(ctx, tasks)
}

func strPtr(s string) *string {
	return &s
}
