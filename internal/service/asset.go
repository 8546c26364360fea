package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// storageLabel is the display name for "no assignee" in history entries
const storageLabel = "Storage"

// AssetService handles business logic for assets: state normalization,
// ownership scoping and the audit trail.
type AssetService struct {
	repo         repository.AssetRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	entitlements *EntitlementService
	validator    *validator.Validate
}

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, entitlements *EntitlementService, validator *validator.Validate) *AssetService {
	return &AssetService{
		repo:         repo,
		employeeRepo: employeeRepo,
		entitlements: entitlements,
		validator:    validator,
	}
}

// CreateAssetRequest represents the request to create an asset
type CreateAssetRequest struct {
	Name               string             `json:"name" validate:"required,min=1,max=100"`
	Description        string             `json:"description"`
	SerialNumber       string             `json:"serial_number" validate:"max=100"`
	Status             models.AssetStatus `json:"status"`
	AssignedEmployeeID *uuid.UUID         `json:"assigned_employee_id,omitempty"`
}

// UpdateAssetRequest represents the request to update an asset
type UpdateAssetRequest struct {
	Name               string             `json:"name" validate:"required,min=1,max=100"`
	Description        string             `json:"description"`
	SerialNumber       string             `json:"serial_number" validate:"max=100"`
	Status             models.AssetStatus `json:"status" validate:"required"`
	AssignedEmployeeID *uuid.UUID         `json:"assigned_employee_id,omitempty"`
}

// AssignAssetRequest represents the quick-assign request; a nil employee
// id returns the asset to storage.
type AssignAssetRequest struct {
	EmployeeID *uuid.UUID `json:"employee_id"`
}

// UpdateStatusRequest represents the quick status-change request
type UpdateStatusRequest struct {
	Status             models.AssetStatus `json:"status" validate:"required"`
	AssignedEmployeeID *uuid.UUID         `json:"assigned_employee_id,omitempty"`
}

// AssetResponse represents the response for asset operations
type AssetResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description,omitempty"`
	SerialNumber         string             `json:"serial_number,omitempty"`
	Status               models.AssetStatus `json:"status"`
	StatusLabel          string             `json:"status_label"`
	AssignedEmployeeID   *uuid.UUID         `json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName string             `json:"assigned_employee_name,omitempty"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}

// PublicAssetResponse is the read-only view served to QR code scans,
// intentionally without any ownership context beyond the company name.
type PublicAssetResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StatusLabel string    `json:"status_label"`
	CompanyName string    `json:"company_name,omitempty"`
}

// AssetHistoryResponse represents one audit trail entry
type AssetHistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	ChangedBy string    `json:"changed_by,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// Create creates a new asset for the resolved owner. The entitlement
// gate runs first; the state rule runs right before persistence. No
// history entry is written on create (there is no prior state to diff).
func (s *AssetService) Create(owner *models.Account, req *CreateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.entitlements.CanAddAsset(owner); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.AssetStatusAvailable
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidAssetStatus
	}

	employee, err := s.resolveEmployee(owner, req.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		OwnerAccountID:     owner.ID,
		Name:               req.Name,
		Description:        req.Description,
		SerialNumber:       req.SerialNumber,
		Status:             status,
		AssignedEmployeeID: req.AssignedEmployeeID,
	}
	asset.Normalize()

	if err := s.repo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	asset.AssignedEmployee = employee
	if asset.AssignedEmployeeID == nil {
		asset.AssignedEmployee = nil
	}
	return s.toResponse(asset), nil
}

// Update applies a full edit to an asset. actorID is the account that
// triggered the change and is recorded on any resulting history entry.
func (s *AssetService) Update(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidAssetStatus
	}

	asset, err := s.getOwned(owner, assetID)
	if err != nil {
		return nil, err
	}

	employee, err := s.resolveEmployee(owner, req.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	prevStatus := asset.Status
	prevAssigneeID := asset.AssignedEmployeeID
	prevAssigneeName := assigneeName(asset.AssignedEmployee)

	asset.Name = req.Name
	asset.Description = req.Description
	asset.SerialNumber = req.SerialNumber
	asset.Status = req.Status
	asset.AssignedEmployeeID = req.AssignedEmployeeID

	return s.persistUpdate(owner, actorID, asset, employee, prevStatus, prevAssigneeID, prevAssigneeName)
}

// Assign hands an asset to an employee (or back to storage with a nil
// employee id). The state rule fills in the matching status.
func (s *AssetService) Assign(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID, req *AssignAssetRequest) (*AssetResponse, error) {
	asset, err := s.getOwned(owner, assetID)
	if err != nil {
		return nil, err
	}

	employee, err := s.resolveEmployee(owner, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	prevStatus := asset.Status
	prevAssigneeID := asset.AssignedEmployeeID
	prevAssigneeName := assigneeName(asset.AssignedEmployee)

	asset.AssignedEmployeeID = req.EmployeeID
	if req.EmployeeID != nil {
		asset.Status = models.AssetStatusAssigned
	} else {
		asset.Status = models.AssetStatusAvailable
	}

	return s.persistUpdate(owner, actorID, asset, employee, prevStatus, prevAssigneeID, prevAssigneeName)
}

// Return is the one-click action putting an asset back into storage
func (s *AssetService) Return(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID) (*AssetResponse, error) {
	asset, err := s.getOwned(owner, assetID)
	if err != nil {
		return nil, err
	}

	prevStatus := asset.Status
	prevAssigneeID := asset.AssignedEmployeeID
	prevAssigneeName := assigneeName(asset.AssignedEmployee)

	asset.Status = models.AssetStatusAvailable
	asset.AssignedEmployeeID = nil

	return s.persistUpdate(owner, actorID, asset, nil, prevStatus, prevAssigneeID, prevAssigneeName)
}

// UpdateStatus applies the quick status form: a new status and an
// optional assignee change in one step.
func (s *AssetService) UpdateStatus(owner *models.Account, actorID uuid.UUID, assetID uuid.UUID, req *UpdateStatusRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidAssetStatus
	}

	asset, err := s.getOwned(owner, assetID)
	if err != nil {
		return nil, err
	}

	employee, err := s.resolveEmployee(owner, req.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	prevStatus := asset.Status
	prevAssigneeID := asset.AssignedEmployeeID
	prevAssigneeName := assigneeName(asset.AssignedEmployee)

	asset.Status = req.Status
	asset.AssignedEmployeeID = req.AssignedEmployeeID

	return s.persistUpdate(owner, actorID, asset, employee, prevStatus, prevAssigneeID, prevAssigneeName)
}

// GetByID retrieves one asset scoped to the owner
func (s *AssetService) GetByID(owner *models.Account, assetID uuid.UUID) (*AssetResponse, error) {
	asset, err := s.getOwned(owner, assetID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(asset), nil
}

// List retrieves the owner's assets ordered by name, optionally filtered
// by a search query.
func (s *AssetService) List(owner *models.Account, query string) ([]AssetResponse, error) {
	assets, err := s.repo.GetByOwner(owner.ID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	responses := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, *s.toResponse(&assets[i]))
	}
	return responses, nil
}

// Delete removes an asset and its history
func (s *AssetService) Delete(owner *models.Account, assetID uuid.UUID) error {
	if err := s.repo.Delete(owner.ID, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssetNotFound
		}
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// GetPublic serves the unauthenticated QR landing view. Ownership
// scoping is bypassed by design: printed codes must resolve without a
// login.
func (s *AssetService) GetPublic(publicID uuid.UUID) (*PublicAssetResponse, error) {
	asset, err := s.repo.GetByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &PublicAssetResponse{
		ID:          asset.ID,
		Name:        asset.Name,
		Description: asset.Description,
		StatusLabel: asset.Status.Label(),
		CompanyName: asset.OwnerAccount.CompanyName,
	}, nil
}

// GetHistory returns the audit trail of an owned asset, newest first
func (s *AssetService) GetHistory(owner *models.Account, assetID uuid.UUID) ([]AssetHistoryResponse, error) {
	if _, err := s.getOwned(owner, assetID); err != nil {
		return nil, err
	}

	entries, err := s.repo.GetHistory(assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset history: %w", err)
	}

	responses := make([]AssetHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := AssetHistoryResponse{
			ID:        entry.ID,
			Action:    entry.Action,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		}
		if entry.ChangedByAccount != nil {
			resp.ChangedBy = entry.ChangedByAccount.Email
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetForLabels loads the assets a label request selects, sorted by name.
// An empty selection means every asset the owner has.
func (s *AssetService) GetForLabels(owner *models.Account, ids []uuid.UUID) ([]models.Asset, error) {
	var (
		assets []models.Asset
		err    error
	)
	if len(ids) > 0 {
		assets, err = s.repo.GetByIDs(owner.ID, ids)
	} else {
		assets, err = s.repo.GetByOwner(owner.ID, "")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for labels: %w", err)
	}
	return assets, nil
}

// persistUpdate runs the state rule, diffs against the previous
// persisted state and commits the asset together with any audit entry
// in one transaction.
func (s *AssetService) persistUpdate(owner *models.Account, actorID uuid.UUID, asset *models.Asset, employee *models.Employee, prevStatus models.AssetStatus, prevAssigneeID *uuid.UUID, prevAssigneeName string) (*AssetResponse, error) {
	asset.Normalize()

	newAssigneeName := storageLabel
	if asset.AssignedEmployeeID != nil && employee != nil {
		newAssigneeName = employee.Name
	} else if asset.AssignedEmployeeID != nil && asset.AssignedEmployee != nil {
		newAssigneeName = asset.AssignedEmployee.Name
	}

	history := buildHistoryEntry(asset, actorID, owner.ID, prevStatus, prevAssigneeID, prevAssigneeName, newAssigneeName)

	if err := s.repo.UpdateWithHistory(asset, history); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	// Keep the in-memory association in sync with what was persisted
	if asset.AssignedEmployeeID == nil {
		asset.AssignedEmployee = nil
	} else if employee != nil {
		asset.AssignedEmployee = employee
	}
	return s.toResponse(asset), nil
}

// buildHistoryEntry diffs the tracked fields (status, assignee) and
// produces the audit entry, or nil when nothing tracked changed.
// Fragment format follows the printed history: "Status: <old> -> <new>"
// and "Assigned to: <old or Storage> -> <new or Storage>".
func buildHistoryEntry(asset *models.Asset, actorID, ownerID uuid.UUID, prevStatus models.AssetStatus, prevAssigneeID *uuid.UUID, prevAssigneeName, newAssigneeName string) *models.AssetHistory {
	var changes []string

	if prevStatus != asset.Status {
		changes = append(changes, fmt.Sprintf("Status: %s -> %s", prevStatus.Label(), asset.Status.Label()))
	}

	if !uuidPtrEqual(prevAssigneeID, asset.AssignedEmployeeID) {
		oldName := prevAssigneeName
		if prevAssigneeID == nil || oldName == "" {
			oldName = storageLabel
		}
		newName := newAssigneeName
		if asset.AssignedEmployeeID == nil || newName == "" {
			newName = storageLabel
		}
		changes = append(changes, fmt.Sprintf("Assigned to: %s -> %s", oldName, newName))
	}

	if len(changes) == 0 {
		return nil
	}

	changedBy := actorID
	if changedBy == uuid.Nil {
		changedBy = ownerID
	}

	return &models.AssetHistory{
		AssetID:            asset.ID,
		Action:             strings.Join(changes, ", "),
		ChangedByAccountID: &changedBy,
	}
}

// getOwned loads an asset scoped to the owner, translating a miss into
// the user-facing not-found error.
func (s *AssetService) getOwned(owner *models.Account, assetID uuid.UUID) (*models.Asset, error) {
	asset, err := s.repo.GetByID(owner.ID, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// resolveEmployee verifies an assignee belongs to the owner. A nil id
// is valid and means "storage".
func (s *AssetService) resolveEmployee(owner *models.Account, employeeID *uuid.UUID) (*models.Employee, error) {
	if employeeID == nil {
		return nil, nil
	}

	employee, err := s.employeeRepo.GetByID(owner.ID, *employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *AssetService) toResponse(asset *models.Asset) *AssetResponse {
	resp := &AssetResponse{
		ID:                 asset.ID,
		Name:               asset.Name,
		Description:        asset.Description,
		SerialNumber:       asset.SerialNumber,
		Status:             asset.Status,
		StatusLabel:        asset.Status.Label(),
		AssignedEmployeeID: asset.AssignedEmployeeID,
		CreatedAt:          asset.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          asset.UpdatedAt.Format(time.RFC3339),
	}
	if asset.AssignedEmployee != nil {
		resp.AssignedEmployeeName = asset.AssignedEmployee.Name
	}
	return resp
}

func assigneeName(employee *models.Employee) string {
	if employee == nil {
		return ""
	}
	return employee.Name
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
