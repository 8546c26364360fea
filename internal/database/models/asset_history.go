package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetHistory is an append-only audit entry recording a tracked change
// to an asset. Entries are written in the same transaction as the asset
// update that produced them and are never edited or deleted.
type AssetHistory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`

	AssetID uuid.UUID `json:"asset_id" gorm:"type:uuid;not null;index" validate:"required"`
	Action  string    `json:"action" gorm:"not null;size:255" validate:"required,max=255"`

	// The account that triggered the change; nullable so entries survive
	// the removal of a team member.
	ChangedByAccountID *uuid.UUID `json:"changed_by_account_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Asset            Asset    `json:"-" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
	ChangedByAccount *Account `json:"changed_by_account,omitempty" gorm:"foreignKey:ChangedByAccountID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AssetHistory
func (AssetHistory) TableName() string {
	return "asset_histories"
}

// BeforeCreate sets the UUID if not already set
func (h *AssetHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
