package service

import (
	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssetServiceInterface defines the interface for asset operations
type AssetServiceInterface interface {
	Create(owner *models.Account, req *CreateAssetRequest) (*AssetResponse, error)
	Update(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error)
	Assign(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID, req *AssignAssetRequest) (*AssetResponse, error)
	Return(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID) (*AssetResponse, error)
	UpdateStatus(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID, req *UpdateStatusRequest) (*AssetResponse, error)
	GetByID(owner *models.Account, assetID uuid.UUID) (*AssetResponse, error)
	List(owner *models.Account, query string) ([]AssetResponse, error)
	Delete(owner *models.Account, assetID uuid.UUID) error
	GetPublic(publicID uuid.UUID) (*PublicAssetResponse, error)
	GetHistory(owner *models.Account, assetID uuid.UUID) ([]AssetHistoryResponse, error)
	GetForLabels(owner *models.Account, ids []uuid.UUID) ([]models.Asset, error)
}

// EmployeeServiceInterface defines the interface for employee operations
type EmployeeServiceInterface interface {
	Create(owner *models.Account, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(owner *models.Account, employeeID uuid.UUID) (*EmployeeResponse, error)
	List(owner *models.Account) ([]EmployeeResponse, error)
	Update(owner *models.Account, employeeID uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(owner *models.Account, employeeID uuid.UUID) error
}

// AccountServiceInterface defines the interface for profile and ownership operations
type AccountServiceInterface interface {
	ResolveOwner(actor *models.Account) (*models.Account, error)
	IsPrimary(actor *models.Account) bool
	GetProfile(actor *models.Account) (*ProfileResponse, error)
	UpdateProfile(actor *models.Account, req *UpdateProfileRequest) (*ProfileResponse, error)
	OwnerContact(owner *models.Account) OwnerContact
}

// TeamServiceInterface defines the interface for team delegation operations
type TeamServiceInterface interface {
	Roster(actor *models.Account) ([]TeamMemberResponse, []InvitationResponse, error)
	Invite(actor *models.Account, req *InviteRequest) (*InvitationResponse, error)
	Accept(req *AcceptInvitationRequest) (*TeamMemberResponse, error)
	RevokeInvitation(actor *models.Account, invitationID uuid.UUID) error
	RemoveMember(actor *models.Account, memberID uuid.UUID) error
}

// LabelServiceInterface defines the interface for label sheet rendering
type LabelServiceInterface interface {
	RenderPDF(assets []models.Asset, contact OwnerContact) ([]byte, error)
}

// EntitlementServiceInterface defines the interface for plan limit checks
type EntitlementServiceInterface interface {
	CanAddAsset(owner *models.Account) error
	CanBulkExport(owner *models.Account, requestedCount int) error
	CanUseTeamFeatures(owner *models.Account) error
}
