package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/repository"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// Create creates a project owned by the acting admin. An explicit owner
// id in the request must match the token subject.
func (s *ProjectService) Create(ctx context.Context, actor domain.Actor, project *domain.Project) (*domain.Project, error) {
	if project.OwnerID != "" && project.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	project.OwnerID = actor.ID
	project.ProjectID = uuid.New()
	if project.Status == "" {
		project.Status = domain.StatusToDo
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(ctx, project.ProjectID)
}

// List returns the acting admin's projects sorted by due date. An
// explicit id query parameter must match the token subject.
func (s *ProjectService) List(ctx context.Context, actor domain.Actor, ownerID string) ([]*domain.Project, error) {
	if ownerID != "" && ownerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return s.projectRepo.ListByOwner(ctx, actor.ID)
}

// GetByID retrieves a project by its store-generated id. A malformed id
// is reported the same way as a missing record.
func (s *ProjectService) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	id, err := uuid.Parse(projectID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}
	return s.projectRepo.GetByID(ctx, id)
}

// Update updates a project owned by the acting admin. pid and owner are
// immutable after creation.
func (s *ProjectService) Update(ctx context.Context, actor domain.Actor, projectID string, project *domain.Project) (*domain.Project, error) {
	existing, err := s.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	project.ProjectID = existing.ProjectID
	project.PID = existing.PID
	project.OwnerID = existing.OwnerID

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(ctx, existing.ProjectID)
}

// Delete removes a project owned by the acting admin together with all
// tasks referencing its pid, in one transaction.
func (s *ProjectService) Delete(ctx context.Context, actor domain.Actor, projectID string) error {
	existing, err := s.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if existing.OwnerID != actor.ID {
		return domain.ErrForbidden
	}

	return s.projectRepo.Delete(ctx, existing.ProjectID)
}
