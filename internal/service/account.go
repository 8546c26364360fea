package service

import (
	"errors"
	"fmt"

	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles profile management and ownership resolution
type AccountService struct {
	repo      repository.AccountRepositoryInterface
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(repo repository.AccountRepositoryInterface, validator *validator.Validate) *AccountService {
	return &AccountService{repo: repo, validator: validator}
}

// UpdateProfileRequest represents the request to update profile settings
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	CompanyName string `json:"company_name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
}

// ProfileResponse represents the profile as shown to the account holder
type ProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	PendingEmail     string    `json:"pending_email,omitempty"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	CompanyName      string    `json:"company_name"`
	PhoneNumber      string    `json:"phone_number"`
	IsPremium        bool      `json:"is_premium"`
	MaxAssets        int       `json:"max_assets"`
	IsPrimaryOwner   bool      `json:"is_primary_owner"`
	EffectiveCompany string    `json:"effective_company_name"`
}

// ResolveOwner maps an authenticated principal to the account whose data
// it operates on: the delegation target for team members, the principal
// itself otherwise. Delegation is single level, so the result never
// needs resolving again.
func (s *AccountService) ResolveOwner(actor *models.Account) (*models.Account, error) {
	if actor.MasterAccountID == nil {
		return actor, nil
	}
	if actor.MasterAccount != nil {
		return actor.MasterAccount, nil
	}

	owner, err := s.repo.GetByID(*actor.MasterAccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve owner account: %w", err)
	}
	return owner, nil
}

// IsPrimary reports whether the principal is a primary owner rather
// than a delegated team member.
func (s *AccountService) IsPrimary(actor *models.Account) bool {
	return actor.IsPrimary()
}

// GetProfile returns the account's profile, including the effective
// values a delegated team member inherits from its primary owner.
func (s *AccountService) GetProfile(actor *models.Account) (*ProfileResponse, error) {
	owner, err := s.ResolveOwner(actor)
	if err != nil {
		return nil, err
	}

	resp := &ProfileResponse{
		ID:               actor.ID,
		Email:            actor.Email,
		PendingEmail:     actor.PendingEmail,
		FirstName:        actor.FirstName,
		LastName:         actor.LastName,
		CompanyName:      actor.CompanyName,
		PhoneNumber:      actor.PhoneNumber,
		IsPremium:        owner.IsPremium,
		MaxAssets:        owner.MaxAssets,
		IsPrimaryOwner:   actor.IsPrimary(),
		EffectiveCompany: owner.CompanyName,
	}
	return resp, nil
}

// UpdateProfile updates the caller's own profile fields. An email change
// is staged into PendingEmail with a fresh verification token; delivery
// of the verification message is handled outside this service.
func (s *AccountService) UpdateProfile(actor *models.Account, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	actor.FirstName = req.FirstName
	actor.LastName = req.LastName
	actor.CompanyName = req.CompanyName
	actor.PhoneNumber = req.PhoneNumber

	if req.Email != "" && req.Email != actor.Email {
		token := uuid.New()
		actor.PendingEmail = req.Email
		actor.EmailVerificationToken = &token
	}

	if err := s.repo.Update(actor); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(actor)
}

// OwnerContact returns the contact block printed on label sheets for
// the resolved owner.
func (s *AccountService) OwnerContact(owner *models.Account) OwnerContact {
	return OwnerContact{
		CompanyName: owner.CompanyName,
		Phone:       owner.PhoneNumber,
		Email:       owner.Email,
	}
}
