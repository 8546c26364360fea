package service

import (
	"errors"
	"fmt"
	"time"

	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordHasher hashes plaintext passwords for newly created accounts.
// Implemented by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// TeamService handles team delegation: inviting members, accepting
// invitations and removing members. All mutating operations require the
// caller to be a primary owner on a premium plan.
type TeamService struct {
	accountRepo    repository.AccountRepositoryInterface
	invitationRepo repository.TeamInvitationRepositoryInterface
	entitlements   *EntitlementService
	hasher         PasswordHasher
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(accountRepo repository.AccountRepositoryInterface, invitationRepo repository.TeamInvitationRepositoryInterface, entitlements *EntitlementService, hasher PasswordHasher, validator *validator.Validate) *TeamService {
	return &TeamService{
		accountRepo:    accountRepo,
		invitationRepo: invitationRepo,
		entitlements:   entitlements,
		hasher:         hasher,
		validator:      validator,
	}
}

// InviteRequest represents the request to invite a team member
type InviteRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// AcceptInvitationRequest carries the details the invitee fills in when
// redeeming an invitation token.
type AcceptInvitationRequest struct {
	Token     uuid.UUID `json:"token" validate:"required"`
	Password  string    `json:"password" validate:"required,min=8,max=72"`
	FirstName string    `json:"first_name" validate:"max=100"`
	LastName  string    `json:"last_name" validate:"max=100"`
}

// TeamMemberResponse represents a delegated account on the roster
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt string    `json:"created_at"`
}

// InvitationResponse represents a sent invitation
type InvitationResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Token     uuid.UUID `json:"token"`
	Accepted  bool      `json:"accepted"`
	CreatedAt string    `json:"created_at"`
}

// Roster lists the caller's team members and pending invitations
func (s *TeamService) Roster(actor *models.Account) ([]TeamMemberResponse, []InvitationResponse, error) {
	if err := s.requirePrimaryPremium(actor); err != nil {
		return nil, nil, err
	}

	members, err := s.accountRepo.GetTeamMembers(actor.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list team members: %w", err)
	}

	invitations, err := s.invitationRepo.GetByInviter(actor.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	memberResponses := make([]TeamMemberResponse, 0, len(members))
	for i := range members {
		memberResponses = append(memberResponses, toTeamMemberResponse(&members[i]))
	}

	invitationResponses := make([]InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		invitationResponses = append(invitationResponses, InvitationResponse{
			ID:        inv.ID,
			Email:     inv.Email,
			Token:     inv.Token,
			Accepted:  inv.Accepted,
			CreatedAt: inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return memberResponses, invitationResponses, nil
}

// Invite creates a pending invitation for a new team member. The email
// must not belong to an existing account, and only one open invitation
// per email is allowed.
func (s *TeamService) Invite(actor *models.Account, req *InviteRequest) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requirePrimaryPremium(actor); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAccountExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	if _, err := s.invitationRepo.GetPendingByInviterAndEmail(actor.ID, req.Email); err == nil {
		return nil, apperrors.ErrInvitationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}

	invitation := &models.TeamInvitation{
		InviterAccountID: actor.ID,
		Email:            req.Email,
		Token:            uuid.New(),
	}
	if err := s.invitationRepo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &InvitationResponse{
		ID:        invitation.ID,
		Email:     invitation.Email,
		Token:     invitation.Token,
		Accepted:  invitation.Accepted,
		CreatedAt: invitation.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Accept redeems an invitation token. The new account is created as a
// delegate of the inviter, which keeps delegation single level: a
// delegated account can never invite, so it can never become a master.
func (s *TeamService) Accept(req *AcceptInvitationRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	invitation, err := s.invitationRepo.GetByToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}
	if invitation.Accepted {
		return nil, apperrors.ErrInvitationConsumed
	}

	if _, err := s.accountRepo.GetByEmail(invitation.Email); err == nil {
		return nil, apperrors.ErrAccountExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	inviterID := invitation.InviterAccountID
	member := &models.Account{
		Email:           invitation.Email,
		PasswordHash:    hash,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MasterAccountID: &inviterID,
	}
	if err := s.accountRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member account: %w", err)
	}

	invitation.Accepted = true
	if err := s.invitationRepo.Update(invitation); err != nil {
		return nil, fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	resp := toTeamMemberResponse(member)
	return &resp, nil
}

// RevokeInvitation deletes a pending invitation
func (s *TeamService) RevokeInvitation(actor *models.Account, invitationID uuid.UUID) error {
	if err := s.requirePrimaryPremium(actor); err != nil {
		return err
	}

	invitations, err := s.invitationRepo.GetByInviter(actor.ID)
	if err != nil {
		return fmt.Errorf("failed to list invitations: %w", err)
	}
	for _, inv := range invitations {
		if inv.ID == invitationID {
			if inv.Accepted {
				return apperrors.ErrInvitationConsumed
			}
			return s.invitationRepo.Delete(inv.ID)
		}
	}
	return apperrors.ErrInvitationNotFound
}

// RemoveMember deletes a delegated account from the caller's team. The
// member's login stops working; the owner's data is untouched since
// delegates never own rows.
func (s *TeamService) RemoveMember(actor *models.Account, memberID uuid.UUID) error {
	if err := s.requirePrimaryPremium(actor); err != nil {
		return err
	}

	member, err := s.accountRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to load team member: %w", err)
	}
	if member.MasterAccountID == nil || *member.MasterAccountID != actor.ID {
		return apperrors.ErrTeamMemberNotFound
	}

	if err := s.accountRepo.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

// requirePrimaryPremium gates team management: delegated members may
// never manage the roster, and the plan must include team features.
func (s *TeamService) requirePrimaryPremium(actor *models.Account) error {
	if !actor.IsPrimary() {
		return apperrors.ErrNotPrimaryOwner
	}
	return s.entitlements.CanUseTeamFeatures(actor)
}

func toTeamMemberResponse(member *models.Account) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        member.ID,
		Email:     member.Email,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
	}
}
