package repository

import (
	"asset-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets and their
// audit history
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// GetByID retrieves an asset by ID scoped to the owning account
func (r *AssetRepository) GetByID(ownerID, id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.Preload("AssignedEmployee").
		First(&asset, "id = ? AND owner_account_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByPublicID retrieves an asset by its public identifier with NO
// ownership scoping. Used only by the public QR landing endpoint.
func (r *AssetRepository) GetByPublicID(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.Preload("AssignedEmployee").Preload("OwnerAccount").
		First(&asset, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByOwner retrieves the assets of an account ordered by name,
// optionally filtered by a case-insensitive search over name, serial
// number, description and assignee name.
func (r *AssetRepository) GetByOwner(ownerID uuid.UUID, query string) ([]models.Asset, error) {
	var assets []models.Asset

	q := r.db.Model(&models.Asset{}).Preload("AssignedEmployee").
		Where("assets.owner_account_id = ?", ownerID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Joins("LEFT JOIN employees ON employees.id = assets.assigned_employee_id").
			Where("assets.name ILIKE ? OR assets.serial_number ILIKE ? OR assets.description ILIKE ? OR employees.name ILIKE ?",
				like, like, like, like)
	}

	err := q.Order("assets.name").Find(&assets).Error
	return assets, err
}

// GetByIDs retrieves a selection of an account's assets ordered by name
func (r *AssetRepository) GetByIDs(ownerID uuid.UUID, ids []uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Preload("AssignedEmployee").
		Where("owner_account_id = ? AND id IN ?", ownerID, ids).
		Order("name").Find(&assets).Error
	return assets, err
}

// CountByOwner returns the number of assets owned by an account.
// Used by the entitlement gate for quota checks.
func (r *AssetRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Asset{}).Where("owner_account_id = ?", ownerID).Count(&count).Error
	return count, err
}

// Update updates an asset without writing history
func (r *AssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

// UpdateWithHistory persists an asset update and its audit entry in one
// transaction: either both commit or neither does. A nil history means
// no tracked field changed and only the asset row is written.
func (r *AssetRepository) UpdateWithHistory(asset *models.Asset, history *models.AssetHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(asset).Error; err != nil {
			return err
		}
		if history != nil {
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes an asset scoped to the owning account; history entries
// cascade with it.
func (r *AssetRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Delete(&models.Asset{}, "id = ? AND owner_account_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetHistory retrieves the audit trail of an asset, newest first
func (r *AssetRepository) GetHistory(assetID uuid.UUID) ([]models.AssetHistory, error) {
	var history []models.AssetHistory
	err := r.db.Preload("ChangedByAccount").
		Where("asset_id = ?", assetID).
		Order("created_at DESC").Find(&history).Error
	return history, err
}
