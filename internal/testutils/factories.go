package testutils

import (
	"time"

	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test primary Account with default values
func (f *AccountFactory) Create() *models.Account {
	id := uuid.New()
	return &models.Account{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        "owner-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealha",
		FirstName:    "Olive",
		LastName:     "Owner",
		CompanyName:  "Test Company",
		PhoneNumber:  "+1-555-0100",
		IsPremium:    false,
		MaxAssets:    models.DefaultMaxAssets,
	}
}

// WithEmail sets a custom email for the account
func (f *AccountFactory) WithEmail(email string) *models.Account {
	account := f.Create()
	account.Email = email
	return account
}

// Premium creates a premium account
func (f *AccountFactory) Premium() *models.Account {
	account := f.Create()
	account.IsPremium = true
	return account
}

// WithMaxAssets sets a custom asset quota
func (f *AccountFactory) WithMaxAssets(max int) *models.Account {
	account := f.Create()
	account.MaxAssets = max
	return account
}

// DelegateOf creates a team member account delegated to the given owner
func (f *AccountFactory) DelegateOf(ownerID uuid.UUID) *models.Account {
	account := f.Create()
	account.MasterAccountID = &ownerID
	return account
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create(ownerID uuid.UUID) *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerAccountID: ownerID,
		Name:           "Jane Smith",
		Email:          "jane-" + id.String()[:8] + "@test.com",
		Phone:          "+1-555-0123",
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(ownerID uuid.UUID, name string) *models.Employee {
	employee := f.Create(ownerID)
	employee.Name = name
	return employee
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test Asset in storage with default values
func (f *AssetFactory) Create(ownerID uuid.UUID) *models.Asset {
	id := uuid.New()
	return &models.Asset{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerAccountID: ownerID,
		Name:           "Test Laptop",
		Description:    "A test asset",
		SerialNumber:   "SN-" + id.String()[:8],
		Status:         models.AssetStatusAvailable,
	}
}

// WithName sets a custom name for the asset
func (f *AssetFactory) WithName(ownerID uuid.UUID, name string) *models.Asset {
	asset := f.Create(ownerID)
	asset.Name = name
	return asset
}

// AssignedTo creates an asset already handed to an employee
func (f *AssetFactory) AssignedTo(ownerID, employeeID uuid.UUID) *models.Asset {
	asset := f.Create(ownerID)
	asset.Status = models.AssetStatusAssigned
	asset.AssignedEmployeeID = &employeeID
	return asset
}

// WithStatus sets a custom status for the asset
func (f *AssetFactory) WithStatus(ownerID uuid.UUID, status models.AssetStatus) *models.Asset {
	asset := f.Create(ownerID)
	asset.Status = status
	return asset
}

// TeamInvitationFactory provides methods to create test TeamInvitation data
type TeamInvitationFactory struct{}

// NewTeamInvitationFactory creates a new TeamInvitationFactory
func NewTeamInvitationFactory() *TeamInvitationFactory {
	return &TeamInvitationFactory{}
}

// Create creates a pending test invitation
func (f *TeamInvitationFactory) Create(inviterID uuid.UUID) *models.TeamInvitation {
	id := uuid.New()
	return &models.TeamInvitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InviterAccountID: inviterID,
		Email:            "invitee-" + id.String()[:8] + "@test.com",
		Token:            uuid.New(),
		Accepted:         false,
	}
}
