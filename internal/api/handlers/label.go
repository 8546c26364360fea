package handlers

import (
	"net/http"
	"strings"

	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LabelHandler handles HTTP requests for QR label sheets
type LabelHandler struct {
	assetService       service.AssetServiceInterface
	accountService     service.AccountServiceInterface
	labelService       service.LabelServiceInterface
	entitlementService service.EntitlementServiceInterface
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(assetService service.AssetServiceInterface, accountService service.AccountServiceInterface, labelService service.LabelServiceInterface, entitlementService service.EntitlementServiceInterface) *LabelHandler {
	return &LabelHandler{
		assetService:       assetService,
		accountService:     accountService,
		labelService:       labelService,
		entitlementService: entitlementService,
	}
}

// GetLabelSheet handles GET /labels/pdf
// @Summary Download a printable QR label sheet
// @Description Render the selected assets as a PDF of 70x37mm labels, 24 per A4 page. Selection: a single asset via "uuid", an explicit set via comma-separated "uuids", or every asset when neither is given. Multi-label sheets require a premium plan.
// @Tags labels
// @Accept json
// @Produce application/pdf
// @Param uuid query string false "Single asset ID (UUID)"
// @Param uuids query string false "Comma-separated asset IDs"
// @Success 200 {file} binary "PDF label sheet"
// @Failure 400 {object} map[string]interface{} "Invalid asset ID"
// @Failure 402 {object} map[string]interface{} "Bulk export requires premium"
// @Failure 404 {object} map[string]interface{} "No assets matched the selection"
// @Security BearerAuth
// @Router /labels/pdf [get]
func (h *LabelHandler) GetLabelSheet(c *gin.Context) {
	_, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	ids, err := parseLabelSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assets, err := h.assetService.GetForLabels(owner, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(assets) == 0 {
		respondError(c, apperrors.ErrAssetNotFound)
		return
	}

	if err := h.entitlementService.CanBulkExport(owner, len(assets)); err != nil {
		respondError(c, err)
		return
	}

	contact := h.accountService.OwnerContact(owner)
	pdf, err := h.labelService.RenderPDF(assets, contact)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="asset-labels.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// parseLabelSelection reads the uuid / uuids query parameters. An empty
// result means "all assets".
func parseLabelSelection(c *gin.Context) ([]uuid.UUID, error) {
	if single := c.Query("uuid"); single != "" {
		id, err := uuid.Parse(single)
		if err != nil {
			return nil, apperrors.NewValidationError("uuid", "invalid asset ID")
		}
		return []uuid.UUID{id}, nil
	}

	raw := c.Query("uuids")
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, apperrors.NewValidationError("uuids", "invalid asset ID: "+part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
