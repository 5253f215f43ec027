package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/repository"
)

// TaskService handles business logic for tasks, including the ownership
// scoping of every read and write.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// Create creates a task inside a project owned by the acting admin.
// The due date must be strictly in the future; assignee and project
// must exist.
func (s *TaskService) Create(ctx context.Context, actor domain.Actor, task *domain.Task) (*domain.Task, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	owner, err := s.projectRepo.GetOwnerByPID(ctx, task.Project)
	if err != nil {
		return nil, err
	}
	if owner != actor.ID {
		return nil, domain.ErrForbidden
	}

	if !task.DueDate.After(time.Now()) {
		return nil, domain.ErrDueDatePast
	}

	task.TaskID = uuid.New()
	if task.Status == "" {
		task.Status = domain.StatusToDo
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, task.TaskID)
}

// GetByID retrieves a task visible to the actor: an admin sees tasks of
// their own projects, a member sees tasks assigned to them.
func (s *TaskService) GetByID(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, actor, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List returns tasks matching the filters, restricted to the actor's
// scope: an admin gets tasks of their own projects, a member gets tasks
// assigned to them. Sorted by due date ascending.
func (s *TaskService) List(ctx context.Context, actor domain.Actor, filter domain.TaskFilter) ([]*domain.Task, error) {
	if actor.IsAdmin() {
		filter.OwnerID = actor.ID
	} else {
		if filter.AssignedTo != "" && filter.AssignedTo != actor.ID {
			return nil, domain.ErrForbidden
		}
		filter.AssignedTo = actor.ID
		filter.OwnerID = ""
	}

	return s.taskRepo.List(ctx, filter)
}

// Update replaces a task's fields. Admin only; both the current and the
// new project must belong to the acting admin. An omitted status keeps
// the task's current one.
func (s *TaskService) Update(ctx context.Context, actor domain.Actor, taskID string, task *domain.Task) (*domain.Task, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	existing, err := s.GetByID(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == "" {
		task.Status = existing.Status
	}

	if task.Project != existing.Project {
		owner, err := s.projectRepo.GetOwnerByPID(ctx, task.Project)
		if err != nil {
			return nil, err
		}
		if owner != actor.ID {
			return nil, domain.ErrForbidden
		}
	}

	task.TaskID = existing.TaskID
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, existing.TaskID)
}

// Delete removes a task. Admin only.
func (s *TaskService) Delete(ctx context.Context, actor domain.Actor, taskID string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	existing, err := s.GetByID(ctx, actor, taskID)
	if err != nil {
		return err
	}

	return s.taskRepo.Delete(ctx, existing.TaskID)
}

// SetStatus updates a task's status. Transitions are unrestricted: any
// valid status may replace any other. Allowed for the owning admin and
// the assigned member.
func (s *TaskService) SetStatus(ctx context.Context, actor domain.Actor, taskID string, status domain.Status) (*domain.Task, error) {
	existing, err := s.GetByID(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.SetStatus(ctx, existing.TaskID, status); err != nil {
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, existing.TaskID)
}

// AddComment appends a comment to a task. Allowed for the owning admin
// and the assigned member; order of comments is preserved.
func (s *TaskService) AddComment(ctx context.Context, actor domain.Actor, taskID, comment string) (*domain.Task, error) {
	existing, err := s.GetByID(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.AddComment(ctx, existing.TaskID, comment); err != nil {
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, existing.TaskID)
}

// authorize checks that the task is inside the actor's scope
func (s *TaskService) authorize(ctx context.Context, actor domain.Actor, task *domain.Task) error {
	if actor.IsAdmin() {
		owner, err := s.projectRepo.GetOwnerByPID(ctx, task.Project)
		if err != nil {
			return err
		}
		if owner != actor.ID {
			return domain.ErrForbidden
		}
		return nil
	}

	if task.AssignedTo != actor.ID {
		return domain.ErrForbidden
	}
	return nil
}
