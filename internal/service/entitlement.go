package service

import (
	"fmt"

	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/repository"
)

// EntitlementService enforces plan limits. All checks take the RESOLVED
// owner account, so delegated team members inherit the primary owner's
// premium flag and quota automatically.
type EntitlementService struct {
	assetRepo repository.AssetRepositoryInterface
}

// NewEntitlementService creates a new entitlement service
func NewEntitlementService(assetRepo repository.AssetRepositoryInterface) *EntitlementService {
	return &EntitlementService{assetRepo: assetRepo}
}

// CanAddAsset returns nil when the owner may create another asset:
// premium accounts are unlimited, free accounts are capped at MaxAssets.
// The count is re-read on every call; concurrent adds at the boundary
// may overshoot the quota by the request concurrency, which is accepted.
func (s *EntitlementService) CanAddAsset(owner *models.Account) error {
	if owner.IsPremium {
		return nil
	}

	count, err := s.assetRepo.CountByOwner(owner.ID)
	if err != nil {
		return fmt.Errorf("failed to count assets: %w", err)
	}
	if count >= int64(owner.MaxAssets) {
		return apperrors.ErrAssetQuotaReached
	}
	return nil
}

// CanBulkExport returns nil when the owner may export requestedCount
// labels in one document. Free accounts print one label at a time.
func (s *EntitlementService) CanBulkExport(owner *models.Account, requestedCount int) error {
	if owner.IsPremium || requestedCount <= 1 {
		return nil
	}
	return apperrors.ErrBulkExportDenied
}

// CanUseTeamFeatures returns nil when the owner's plan includes team
// delegation.
func (s *EntitlementService) CanUseTeamFeatures(owner *models.Account) error {
	if owner.IsPremium {
		return nil
	}
	return apperrors.ErrTeamFeaturesDenied
}
