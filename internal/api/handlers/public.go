package handlers

import (
	"net/http"

	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves the unauthenticated endpoints behind printed QR
// codes. These bypass ownership scoping on purpose: a scanned label must
// resolve without a login.
type PublicHandler struct {
	assetService service.AssetServiceInterface
	qrEncoder    service.QREncoder
	publicURL    func(publicID string) string
}

// NewPublicHandler creates a new public handler. publicURL builds the
// canonical link a QR code points at.
func NewPublicHandler(assetService service.AssetServiceInterface, qrEncoder service.QREncoder, publicURL func(publicID string) string) *PublicHandler {
	return &PublicHandler{
		assetService: assetService,
		qrEncoder:    qrEncoder,
		publicURL:    publicURL,
	}
}

// GetPublicAsset handles GET /public/assets/:uuid
// @Summary Public asset view
// @Description Read-only asset details for a scanned QR code. No authentication required.
// @Tags public
// @Accept json
// @Produce json
// @Param uuid path string true "Asset ID (UUID)"
// @Success 200 {object} service.PublicAssetResponse "Asset details"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Router /public/assets/{uuid} [get]
func (h *PublicHandler) GetPublicAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		// Unknown and malformed IDs look the same to a scanner
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	asset, err := h.assetService.GetPublic(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetPublicAssetQR handles GET /public/assets/:uuid/qr.png
// @Summary Asset QR code image
// @Description PNG QR code encoding the asset's public URL. The image is generated whether or not the asset exists, so codes can be previewed before printing.
// @Tags public
// @Produce image/png
// @Param uuid path string true "Asset ID (UUID)"
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} map[string]interface{} "Invalid asset ID"
// @Router /public/assets/{uuid}/qr.png [get]
func (h *PublicHandler) GetPublicAssetQR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	png, err := h.qrEncoder.Encode(h.publicURL(id.String()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
