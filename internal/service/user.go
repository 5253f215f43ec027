package service

import (
	"context"
	"errors"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/repository"
)

// UserService handles business logic for users
type UserService struct {
	userRepo   repository.UserRepository
	memberRepo repository.MemberRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, memberRepo repository.MemberRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		memberRepo: memberRepo,
	}
}

// Create creates a new user (signup). Duplicate id or email is a conflict.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Role == domain.RoleAdmin {
		// project_role only makes sense for members
		user.ProjectRole = ""
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListGrouped returns all users grouped by role, sorted by name
func (s *UserService) ListGrouped(ctx context.Context) (*domain.GroupedUsers, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := &domain.GroupedUsers{
		Admin:  []*domain.User{},
		Member: []*domain.User{},
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			grouped.Admin = append(grouped.Admin, u)
		} else {
			grouped.Member = append(grouped.Member, u)
		}
	}

	return grouped, nil
}

// Update updates a user's name, email and project_role. The role is
// immutable through this path. Everyone may update themselves; an admin
// additionally may update members of their own roster.
func (s *UserService) Update(ctx context.Context, actor domain.Actor, user *domain.User) (*domain.User, error) {
	if err := s.authorize(ctx, actor, user.ID); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// Delete removes a user together with their roster rows, projects and
// tasks in a single transaction. An admin may delete themselves or a
// member of their own roster.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, userID string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.authorize(ctx, actor, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// authorize checks that the target user is inside the actor's scope:
// the actor themselves, or for admins a member of their own roster.
// A missing target is reported as not found, a foreign one as forbidden.
func (s *UserService) authorize(ctx context.Context, actor domain.Actor, targetID string) error {
	if actor.ID == targetID {
		return nil
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	member, err := s.memberRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			if _, uerr := s.userRepo.GetByID(ctx, targetID); errors.Is(uerr, domain.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return domain.ErrForbidden
		}
		return err
	}
	if member.AdminID != actor.ID {
		return domain.ErrForbidden
	}

	return nil
}

// DeleteAll removes every user and all dependent records. Admin only.
func (s *UserService) DeleteAll(ctx context.Context, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.userRepo.DeleteAll(ctx)
}
