package service

import (
	"context"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/repository"
)

// TeamService handles business logic for the team roster
type TeamService struct {
	memberRepo repository.MemberRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(memberRepo repository.MemberRepository) *TeamService {
	return &TeamService{
		memberRepo: memberRepo,
	}
}

// AddMember adds a member to the acting admin's roster. The role is
// always forced to Member; the matching canonical user record is
// created or updated in the same transaction.
func (s *TeamService) AddMember(ctx context.Context, actor domain.Actor, member *domain.Member) (*domain.Member, error) {
	member.Role = domain.RoleMember
	member.AdminID = actor.ID

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return s.memberRepo.GetByID(ctx, member.ID)
}

// ListRoster returns the acting admin's roster. An explicit adminId
// query parameter must match the token subject.
func (s *TeamService) ListRoster(ctx context.Context, actor domain.Actor, adminID string) ([]*domain.Member, error) {
	if adminID != "" && adminID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return s.memberRepo.ListByAdmin(ctx, actor.ID)
}

// GetMember retrieves a single roster entry of the acting admin
func (s *TeamService) GetMember(ctx context.Context, actor domain.Actor, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.AdminID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return member, nil
}

// UpdateMember updates a roster entry and the matching user record in
// one transaction. The role stays Member, the owning admin is immutable.
func (s *TeamService) UpdateMember(ctx context.Context, actor domain.Actor, member *domain.Member) (*domain.Member, error) {
	existing, err := s.memberRepo.GetByID(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if existing.AdminID != actor.ID {
		return nil, domain.ErrForbidden
	}

	member.Role = domain.RoleMember
	member.AdminID = existing.AdminID

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return s.memberRepo.GetByID(ctx, member.ID)
}

// RemoveMember deletes a roster entry, the matching user record and
// every task assigned to the member in one transaction.
func (s *TeamService) RemoveMember(ctx context.Context, actor domain.Actor, memberID string) error {
	existing, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if existing.AdminID != actor.ID {
		return domain.ErrForbidden
	}

	return s.memberRepo.Delete(ctx, memberID)
}
