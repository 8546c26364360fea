package repository

import (
	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetByID retrieves an account by ID with its delegation target preloaded
func (r *AccountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.Preload("MasterAccount").First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.Preload("MasterAccount").First(&account, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetTeamMembers retrieves all accounts delegating to the given primary account
func (r *AccountRepository) GetTeamMembers(masterID uuid.UUID) ([]models.Account, error) {
	var members []models.Account
	err := r.db.Where("master_account_id = ?", masterID).Order("email").Find(&members).Error
	return members, err
}

// Update updates an account
func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

// Delete deletes an account; owned employees, assets and team-member
// accounts go with it through the FK constraints.
func (r *AccountRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Account{}, "id = ?", id).Error
}
