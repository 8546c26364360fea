package models

import (
	"github.com/google/uuid"
)

// TeamInvitation stores a pending invitation from a primary account to a
// new team member. The token is the opaque value embedded in the invite
// link; accepting it creates a delegated account.
type TeamInvitation struct {
	BaseModel
	InviterAccountID uuid.UUID `json:"inviter_account_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email            string    `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Token            uuid.UUID `json:"token" gorm:"type:uuid;uniqueIndex;not null"`
	Accepted         bool      `json:"accepted" gorm:"not null;default:false"`

	// Relationships
	InviterAccount Account `json:"-" gorm:"foreignKey:InviterAccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamInvitation
func (TeamInvitation) TableName() string {
	return "team_invitations"
}
