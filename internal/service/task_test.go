package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/internal/domain"
)

var (
	admin  = domain.Actor{ID: "a1", Role: domain.RoleAdmin}
	member = domain.Actor{ID: "m1", Role: domain.RoleMember}
)

func ownerLookup(owners map[string]string) func(ctx context.Context, pid string) (string, error) {
	return func(ctx context.Context, pid string) (string, error) {
		owner, ok := owners[pid]
		if !ok {
			return "", domain.ErrProjectNotFound
		}
		return owner, nil
	}
}

func TestTaskService_CreateForbiddenForMember(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeProjectRepo{})

	_, err := svc.Create(context.Background(), member, &domain.Task{Project: "p1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskService_CreateForeignProject(t *testing.T) {
	projectRepo := &fakeProjectRepo{
		getOwnerByPIDFn: ownerLookup(map[string]string{"p1": "other-admin"}),
	}
	svc := NewTaskService(&fakeTaskRepo{}, projectRepo)

	_, err := svc.Create(context.Background(), admin, &domain.Task{
		Project: "p1",
		DueDate: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskService_CreateUnknownProject(t *testing.T) {
	projectRepo := &fakeProjectRepo{
		getOwnerByPIDFn: ownerLookup(map[string]string{}),
	}
	svc := NewTaskService(&fakeTaskRepo{}, projectRepo)

	_, err := svc.Create(context.Background(), admin, &domain.Task{
		Project: "missing",
		DueDate: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTaskService_CreatePastDueDate(t *testing.T) {
	projectRepo := &fakeProjectRepo{
		getOwnerByPIDFn: ownerLookup(map[string]string{"p1": admin.ID}),
	}
	created := false
	taskRepo := &fakeTaskRepo{
		createFn: func(ctx context.Context, task *domain.Task) error {
			created = true
			return nil
		},
	}
	svc := NewTaskService(taskRepo, projectRepo)

	_, err := svc.Create(context.Background(), admin, &domain.Task{
		Project: "p1",
		DueDate: time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrDueDatePast)
	assert.False(t, created, "задача с прошедшим сроком не должна сохраняться")
}

func TestTaskService_CreateDefaultsStatus(t *testing.T) {
	projectRepo := &fakeProjectRepo{
		getOwnerByPIDFn: ownerLookup(map[string]string{"p1": admin.ID}),
	}

	var stored *domain.Task
	taskRepo := &fakeTaskRepo{
		createFn: func(ctx context.Context, task *domain.Task) error {
			stored = task
			return nil
		},
		getByIDFn: func(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
			return stored, nil
		},
	}
	svc := NewTaskService(taskRepo, projectRepo)

	task, err := svc.Create(context.Background(), admin, &domain.Task{
		Title:      "Design",
		Project:    "p1",
		AssignedTo: "m1",
		DueDate:    time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToDo, task.Status)
	assert.NotEqual(t, uuid.Nil, task.TaskID)
}

func TestTaskService_ListScopesMemberToSelf(t *testing.T) {
	var captured domain.TaskFilter
	taskRepo := &fakeTaskRepo{
		listFn: func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
			captured = filter
			return []*domain.Task{}, nil
		},
	}
	svc := NewTaskService(taskRepo, &fakeProjectRepo{})

	_, err := svc.List(context.Background(), member, domain.TaskFilter{Status: domain.StatusToDo})
	require.NoError(t, err)
	assert.Equal(t, member.ID, captured.AssignedTo)
	assert.Empty(t, captured.OwnerID)
}

func TestTaskService_ListMemberCannotSpoofAssignee(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeProjectRepo{})

	_, err := svc.List(context.Background(), member, domain.TaskFilter{AssignedTo: "someone-else"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskService_ListScopesAdminToOwnProjects(t *testing.T) {
	var captured domain.TaskFilter
	taskRepo := &fakeTaskRepo{
		listFn: func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
			captured = filter
			return []*domain.Task{}, nil
		},
	}
	svc := NewTaskService(taskRepo, &fakeProjectRepo{})

	_, err := svc.List(context.Background(), admin, domain.TaskFilter{AssignedTo: "m1"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, captured.OwnerID)
	assert.Equal(t, "m1", captured.AssignedTo)
}

func TestTaskService_SetStatusByAssignee(t *testing.T) {
	taskID := uuid.New()
	task := &domain.Task{TaskID: taskID, AssignedTo: member.ID, Project: "p1", Status: domain.StatusToDo}

	taskRepo := &fakeTaskRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			if id != taskID {
				return nil, domain.ErrTaskNotFound
			}
			return task, nil
		},
		setStatusFn: func(ctx context.Context, id uuid.UUID, status domain.Status) error {
			task.Status = status
			return nil
		},
	}
	svc := NewTaskService(taskRepo, &fakeProjectRepo{})

	updated, err := svc.SetStatus(context.Background(), member, taskID.String(), domain.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, updated.Status)
}

func TestTaskService_SetStatusForeignTask(t *testing.T) {
	taskID := uuid.New()
	taskRepo := &fakeTaskRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{TaskID: taskID, AssignedTo: "someone-else", Project: "p1"}, nil
		},
	}
	svc := NewTaskService(taskRepo, &fakeProjectRepo{})

	_, err := svc.SetStatus(context.Background(), member, taskID.String(), domain.StatusDone)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskService_UpdateKeepsStatusWhenOmitted(t *testing.T) {
	taskID := uuid.New()
	stored := &domain.Task{
		TaskID:     taskID,
		Title:      "Design",
		AssignedTo: member.ID,
		Project:    "p1",
		Status:     domain.StatusInProgress,
	}
	projectRepo := &fakeProjectRepo{
		getOwnerByPIDFn: ownerLookup(map[string]string{"p1": admin.ID}),
	}
	taskRepo := &fakeTaskRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			if id != taskID {
				return nil, domain.ErrTaskNotFound
			}
			return stored, nil
		},
		updateFn: func(ctx context.Context, task *domain.Task) error {
			stored = task
			return nil
		},
	}
	svc := NewTaskService(taskRepo, projectRepo)

	// Обновление без статуса не сбрасывает его в To Do
	updated, err := svc.Update(context.Background(), admin, taskID.String(), &domain.Task{
		Title:      "Design v2",
		AssignedTo: member.ID,
		Project:    "p1",
		DueDate:    time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.Equal(t, "Design v2", updated.Title)
}

func TestTaskService_GetByIDMalformed(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeProjectRepo{})

	// Невалидный UUID неотличим от отсутствующей записи
	_, err := svc.GetByID(context.Background(), admin, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
