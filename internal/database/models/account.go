package models

import (
	"github.com/google/uuid"
)

// DefaultMaxAssets is the asset quota granted to non-premium accounts.
const DefaultMaxAssets = 50

// Account represents a billing/tenancy unit that owns assets and employees.
// An account with a MasterAccountID set is a team member acting on the
// master's data; the delegation is single-level (a master never delegates).
type Account struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	FirstName    string `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName     string `json:"last_name" gorm:"size:100" validate:"max=100"`
	CompanyName  string `json:"company_name" gorm:"size:100" validate:"max=100"`
	PhoneNumber  string `json:"phone_number" gorm:"size:30" validate:"max=30"`

	IsPremium bool `json:"is_premium" gorm:"not null;default:false"`
	MaxAssets int  `json:"max_assets" gorm:"not null;default:50"`

	MasterAccountID *uuid.UUID `json:"master_account_id,omitempty" gorm:"type:uuid;index"`

	// Email change flow: the new address is held here until verified.
	PendingEmail           string     `json:"pending_email,omitempty" gorm:"size:255"`
	EmailVerificationToken *uuid.UUID `json:"-" gorm:"type:uuid"`

	// Relationships
	MasterAccount *Account   `json:"master_account,omitempty" gorm:"foreignKey:MasterAccountID;constraint:OnDelete:CASCADE"`
	Employees     []Employee `json:"employees,omitempty" gorm:"foreignKey:OwnerAccountID;constraint:OnDelete:CASCADE"`
	Assets        []Asset    `json:"assets,omitempty" gorm:"foreignKey:OwnerAccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// IsPrimary reports whether the account owns its own data set
// (no delegation pointer).
func (a *Account) IsPrimary() bool {
	return a.MasterAccountID == nil
}

// OwnerID returns the id of the account whose data this account operates
// on: the delegation target for team members, itself otherwise.
func (a *Account) OwnerID() uuid.UUID {
	if a.MasterAccountID != nil {
		return *a.MasterAccountID
	}
	return a.ID
}

// FullName returns the display name of the account holder
func (a *Account) FullName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	default:
		return a.LastName
	}
}
