package service

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/internal/domain"
)

// StatusCounts represents record counts per status
type StatusCounts struct {
	ToDo       int `json:"toDo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Total      int `json:"total"`
}

// Dashboard represents aggregate counts scoped to the acting user
type Dashboard struct {
	Projects *StatusCounts `json:"projects,omitempty"` // Admins only
	Tasks    StatusCounts  `json:"tasks"`
	TeamSize *int          `json:"teamSize,omitempty"` // Admins only
}

// DashboardService handles aggregate statistics queries
type DashboardService struct {
	db *pgxpool.Pool
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(db *pgxpool.Pool) *DashboardService {
	return &DashboardService{db: db}
}

// GetDashboard returns aggregate counts for the acting user: an admin
// sees their projects, the tasks inside them and the roster size, a
// member sees counts of tasks assigned to them.
func (s *DashboardService) GetDashboard(ctx context.Context, actor domain.Actor) (*Dashboard, error) {
	if actor.IsAdmin() {
		return s.adminDashboard(ctx, actor.ID)
	}
	return s.memberDashboard(ctx, actor.ID)
}

func (s *DashboardService) adminDashboard(ctx context.Context, adminID string) (*Dashboard, error) {
	dashboard := &Dashboard{Projects: &StatusCounts{}}

	projectQuery := `
		SELECT
			COUNT(CASE WHEN status = 'To Do' THEN 1 END) as to_do,
			COUNT(CASE WHEN status = 'In Progress' THEN 1 END) as in_progress,
			COUNT(CASE WHEN status = 'Done' THEN 1 END) as done,
			COUNT(*) as total
		FROM projects
		WHERE owner_id = $1
	`
	if err := s.db.QueryRow(ctx, projectQuery, adminID).Scan(
		&dashboard.Projects.ToDo,
		&dashboard.Projects.InProgress,
		&dashboard.Projects.Done,
		&dashboard.Projects.Total,
	); err != nil {
		return nil, err
	}

	taskQuery := `
		SELECT
			COUNT(CASE WHEN t.status = 'To Do' THEN 1 END) as to_do,
			COUNT(CASE WHEN t.status = 'In Progress' THEN 1 END) as in_progress,
			COUNT(CASE WHEN t.status = 'Done' THEN 1 END) as done,
			COUNT(*) as total
		FROM tasks t
		JOIN projects p ON t.project = p.pid
		WHERE p.owner_id = $1
	`
	if err := s.db.QueryRow(ctx, taskQuery, adminID).Scan(
		&dashboard.Tasks.ToDo,
		&dashboard.Tasks.InProgress,
		&dashboard.Tasks.Done,
		&dashboard.Tasks.Total,
	); err != nil {
		return nil, err
	}

	var teamSize int
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM team_members WHERE admin_id = $1`, adminID,
	).Scan(&teamSize); err != nil {
		return nil, err
	}
	dashboard.TeamSize = &teamSize

	return dashboard, nil
}

func (s *DashboardService) memberDashboard(ctx context.Context, memberID string) (*Dashboard, error) {
	dashboard := &Dashboard{}

	taskQuery := `
		SELECT
			COUNT(CASE WHEN status = 'To Do' THEN 1 END) as to_do,
			COUNT(CASE WHEN status = 'In Progress' THEN 1 END) as in_progress,
			COUNT(CASE WHEN status = 'Done' THEN 1 END) as done,
			COUNT(*) as total
		FROM tasks
		WHERE assigned_to = $1
	`
	if err := s.db.QueryRow(ctx, taskQuery, memberID).Scan(
		&dashboard.Tasks.ToDo,
		&dashboard.Tasks.InProgress,
		&dashboard.Tasks.Done,
		&dashboard.Tasks.Total,
	); err != nil {
		return nil, err
	}

	return dashboard, nil
}
