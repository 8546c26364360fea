package service

import (
	"errors"
	"fmt"
	"time"

	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for the employee directory
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Phone string `json:"phone" validate:"max=30"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Phone string `json:"phone" validate:"max=30"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// Create creates a new employee under the resolved owner
func (s *EmployeeService) Create(owner *models.Account, req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee := &models.Employee{
		OwnerAccountID: owner.ID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// GetByID retrieves one employee scoped to the owner
func (s *EmployeeService) GetByID(owner *models.Account, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.getOwned(owner, employeeID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List retrieves the owner's employees ordered by name
func (s *EmployeeService) List(owner *models.Account) ([]EmployeeResponse, error) {
	employees, err := s.repo.GetByOwner(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *toEmployeeResponse(&employees[i]))
	}
	return responses, nil
}

// Update updates an employee's contact details
func (s *EmployeeService) Update(owner *models.Account, employeeID uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.getOwned(owner, employeeID)
	if err != nil {
		return nil, err
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Phone = req.Phone

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// Delete removes an employee. Assets assigned to them keep their status
// but lose the assignee reference at the database level.
func (s *EmployeeService) Delete(owner *models.Account, employeeID uuid.UUID) error {
	if err := s.repo.Delete(owner.ID, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) getOwned(owner *models.Account, employeeID uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(owner.ID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		Phone:     employee.Phone,
		CreatedAt: employee.CreatedAt.Format(time.RFC3339),
	}
}
