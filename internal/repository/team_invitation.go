package repository

import (
	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamInvitationRepository handles database operations for team invitations
type TeamInvitationRepository struct {
	db *gorm.DB
}

// NewTeamInvitationRepository creates a new team invitation repository
func NewTeamInvitationRepository(db *gorm.DB) *TeamInvitationRepository {
	return &TeamInvitationRepository{db: db}
}

// Create creates a new invitation
func (r *TeamInvitationRepository) Create(invitation *models.TeamInvitation) error {
	return r.db.Create(invitation).Error
}

// GetByToken retrieves an invitation by its token
func (r *TeamInvitationRepository) GetByToken(token uuid.UUID) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.db.Preload("InviterAccount").First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPendingByInviterAndEmail finds an open invitation from an inviter to an email
func (r *TeamInvitationRepository) GetPendingByInviterAndEmail(inviterID uuid.UUID, email string) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.db.First(&invitation, "inviter_account_id = ? AND email = ? AND accepted = false", inviterID, email).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByInviter retrieves all invitations sent by an account, newest first
func (r *TeamInvitationRepository) GetByInviter(inviterID uuid.UUID) ([]models.TeamInvitation, error) {
	var invitations []models.TeamInvitation
	err := r.db.Where("inviter_account_id = ?", inviterID).Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

// Update updates an invitation
func (r *TeamInvitationRepository) Update(invitation *models.TeamInvitation) error {
	return r.db.Save(invitation).Error
}

// Delete deletes an invitation
func (r *TeamInvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamInvitation{}, "id = ?", id).Error
}
