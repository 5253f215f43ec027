package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/internal/domain"
)

// Минимальные фейки репозиториев для юнит-тестов сервисов. Поведение
// задается функциональными полями; невызываемые методы паникуют.

type fakeUserRepo struct {
	createFn  func(ctx context.Context, user *domain.User) error
	getByIDFn func(ctx context.Context, userID string) (*domain.User, error)
	listFn    func(ctx context.Context) ([]*domain.User, error)
	updateFn  func(ctx context.Context, user *domain.User) error
	deleteFn  func(ctx context.Context, userID string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return f.getByIDFn(ctx, userID)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	return f.updateFn(ctx, user)
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	return f.deleteFn(ctx, userID)
}

func (f *fakeUserRepo) DeleteAll(ctx context.Context) error {
	return nil
}

type fakeMemberRepo struct {
	createFn      func(ctx context.Context, member *domain.Member) error
	getByIDFn     func(ctx context.Context, memberID string) (*domain.Member, error)
	listByAdminFn func(ctx context.Context, adminID string) ([]*domain.Member, error)
	updateFn      func(ctx context.Context, member *domain.Member) error
	deleteFn      func(ctx context.Context, memberID string) error
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	return f.createFn(ctx, member)
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return f.getByIDFn(ctx, memberID)
}

func (f *fakeMemberRepo) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Member, error) {
	return f.listByAdminFn(ctx, adminID)
}

func (f *fakeMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	return f.updateFn(ctx, member)
}

func (f *fakeMemberRepo) Delete(ctx context.Context, memberID string) error {
	return f.deleteFn(ctx, memberID)
}

type fakeProjectRepo struct {
	createFn        func(ctx context.Context, project *domain.Project) error
	getByIDFn       func(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	getOwnerByPIDFn func(ctx context.Context, pid string) (string, error)
	listByOwnerFn   func(ctx context.Context, ownerID string) ([]*domain.Project, error)
	updateFn        func(ctx context.Context, project *domain.Project) error
	deleteFn        func(ctx context.Context, projectID uuid.UUID) error
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return f.createFn(ctx, project)
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	return f.getByIDFn(ctx, projectID)
}

func (f *fakeProjectRepo) GetOwnerByPID(ctx context.Context, pid string) (string, error) {
	return f.getOwnerByPIDFn(ctx, pid)
}

func (f *fakeProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return f.listByOwnerFn(ctx, ownerID)
}

func (f *fakeProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return f.updateFn(ctx, project)
}

func (f *fakeProjectRepo) Delete(ctx context.Context, projectID uuid.UUID) error {
	return f.deleteFn(ctx, projectID)
}

type fakeTaskRepo struct {
	createFn     func(ctx context.Context, task *domain.Task) error
	getByIDFn    func(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	listFn       func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	updateFn     func(ctx context.Context, task *domain.Task) error
	deleteFn     func(ctx context.Context, taskID uuid.UUID) error
	setStatusFn  func(ctx context.Context, taskID uuid.UUID, status domain.Status) error
	addCommentFn func(ctx context.Context, taskID uuid.UUID, comment string) error
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	return f.createFn(ctx, task)
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	return f.getByIDFn(ctx, taskID)
}

func (f *fakeTaskRepo) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	return f.updateFn(ctx, task)
}

func (f *fakeTaskRepo) Delete(ctx context.Context, taskID uuid.UUID) error {
	return f.deleteFn(ctx, taskID)
}

func (f *fakeTaskRepo) SetStatus(ctx context.Context, taskID uuid.UUID, status domain.Status) error {
	return f.setStatusFn(ctx, taskID, status)
}

func (f *fakeTaskRepo) AddComment(ctx context.Context, taskID uuid.UUID, comment string) error {
	return f.addCommentFn(ctx, taskID, comment)
}
