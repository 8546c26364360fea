package repository

import (
	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID scoped to the owning account
func (r *EmployeeRepository) GetByID(ownerID, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ? AND owner_account_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByOwner retrieves all employees of an account, ordered by name.
// This is also the source for assignee picklists.
func (r *EmployeeRepository) GetByOwner(ownerID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("owner_account_id = ?", ownerID).Order("name").Find(&employees).Error
	return employees, err
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee scoped to the owning account. Assets
// referencing the employee are detached (assigned_employee_id set to
// NULL by the FK constraint), not deleted.
func (r *EmployeeRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Delete(&models.Employee{}, "id = ? AND owner_account_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
