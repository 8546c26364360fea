package models

import (
	"github.com/google/uuid"
)

// Asset represents a tracked physical item (laptop, drill, vehicle).
// The UUID primary key doubles as the public identifier embedded in QR
// codes, so inventory cannot be enumerated by incrementing an index.
type Asset struct {
	BaseModel
	OwnerAccountID uuid.UUID   `json:"owner_account_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string      `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description    string      `json:"description" gorm:"type:text"`
	SerialNumber   string      `json:"serial_number" gorm:"size:100" validate:"max=100"`
	Status         AssetStatus `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE'" validate:"required"`

	AssignedEmployeeID *uuid.UUID `json:"assigned_employee_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	OwnerAccount     Account        `json:"-" gorm:"foreignKey:OwnerAccountID;constraint:OnDelete:CASCADE"`
	AssignedEmployee *Employee      `json:"assigned_employee,omitempty" gorm:"foreignKey:AssignedEmployeeID;constraint:OnDelete:SET NULL"`
	History          []AssetHistory `json:"history,omitempty" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// Normalize keeps status and assignment mutually consistent. It must run
// immediately before every persistence of an asset, in this order:
//  1. an assignee on an AVAILABLE asset forces status to ASSIGNED
//  2. an AVAILABLE asset never keeps an assignee
//  3. an ASSIGNED asset with no assignee reverts to AVAILABLE
//
// MAINTENANCE, LOST and BROKEN are left untouched so a broken item still
// shows who last had it.
func (a *Asset) Normalize() {
	if a.AssignedEmployeeID != nil && a.Status == AssetStatusAvailable {
		a.Status = AssetStatusAssigned
	}
	if a.Status == AssetStatusAvailable {
		a.AssignedEmployeeID = nil
	}
	if a.AssignedEmployeeID == nil && a.Status == AssetStatusAssigned {
		a.Status = AssetStatusAvailable
	}
}

// ShortID returns the first 8 characters of the public identifier,
// printed on labels as a fallback when the QR code cannot be scanned.
func (a *Asset) ShortID() string {
	return a.ID.String()[:8]
}
