package models

import (
	"github.com/google/uuid"
)

// Employee represents a staff record that assets can be assigned to.
// Employees are plain records scoped to an owning account; they are not
// login principals (see Account for team-member logins).
type Employee struct {
	BaseModel
	OwnerAccountID uuid.UUID `json:"owner_account_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email          string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone          string    `json:"phone" gorm:"size:30" validate:"max=30"`

	// Relationships
	OwnerAccount Account `json:"-" gorm:"foreignKey:OwnerAccountID;constraint:OnDelete:CASCADE"`
	Assets       []Asset `json:"assets,omitempty" gorm:"foreignKey:AssignedEmployeeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
