package repository

import (
	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AccountRepositoryInterface defines the interface for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	GetTeamMembers(masterID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(ownerID, id uuid.UUID) (*models.Employee, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(ownerID, id uuid.UUID) error
}

// AssetRepositoryInterface defines the interface for asset repository operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByID(ownerID, id uuid.UUID) (*models.Asset, error)
	GetByPublicID(id uuid.UUID) (*models.Asset, error)
	GetByOwner(ownerID uuid.UUID, query string) ([]models.Asset, error)
	GetByIDs(ownerID uuid.UUID, ids []uuid.UUID) ([]models.Asset, error)
	CountByOwner(ownerID uuid.UUID) (int64, error)
	Update(asset *models.Asset) error
	UpdateWithHistory(asset *models.Asset, history *models.AssetHistory) error
	Delete(ownerID, id uuid.UUID) error
	GetHistory(assetID uuid.UUID) ([]models.AssetHistory, error)
}

// TeamInvitationRepositoryInterface defines the interface for invitation repository operations
type TeamInvitationRepositoryInterface interface {
	Create(invitation *models.TeamInvitation) error
	GetByToken(token uuid.UUID) (*models.TeamInvitation, error)
	GetPendingByInviterAndEmail(inviterID uuid.UUID, email string) (*models.TeamInvitation, error)
	GetByInviter(inviterID uuid.UUID) ([]models.TeamInvitation, error)
	Update(invitation *models.TeamInvitation) error
	Delete(id uuid.UUID) error
}
