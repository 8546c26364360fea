package handlers

import (
	"net/http"

	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler handles HTTP requests for assets
type AssetHandler struct {
	assetService   service.AssetServiceInterface
	accountService service.AccountServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService service.AssetServiceInterface, accountService service.AccountServiceInterface) *AssetHandler {
	return &AssetHandler{
		assetService:   assetService,
		accountService: accountService,
	}
}

// ListAssets handles GET /assets
// @Summary List assets
// @Description Get the account's assets, optionally filtered by a search query over name, serial number, description and assignee name
// @Tags assets
// @Accept json
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} service.AssetResponse "Successfully retrieved assets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	_, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	assets, err := h.assetService.List(owner, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAsset handles GET /assets/:id
// @Summary Get asset by ID
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} service.AssetResponse "Successfully retrieved asset"
// @Failure 400 {object} map[string]interface{} "Invalid asset ID"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	_, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	asset, err := h.assetService.GetByID(owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// CreateAsset handles POST /assets
// @Summary Create a new asset
// @Description Create an asset. Free plans are limited to the account's asset quota; exceeding it returns 402 with upgrade_required.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} service.AssetResponse "Successfully created asset"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 402 {object} map[string]interface{} "Asset quota reached"
// @Security BearerAuth
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	_, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Create(owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// UpdateAsset handles PUT /assets/:id
// @Summary Update an asset
// @Description Full update of an asset. Status and assignee changes are recorded in the asset's history.
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param asset body service.UpdateAssetRequest true "Asset data"
// @Success 200 {object} service.AssetResponse "Successfully updated asset"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	actor, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Update(owner, actor.ID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// AssignAsset handles POST /assets/:id/assign
// @Summary Assign an asset to an employee
// @Description Hand the asset to an employee, or back to storage when employee_id is null
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param assignment body service.AssignAssetRequest true "Assignment target"
// @Success 200 {object} service.AssetResponse "Successfully assigned asset"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Asset or employee not found"
// @Security BearerAuth
// @Router /assets/{id}/assign [post]
func (h *AssetHandler) AssignAsset(c *gin.Context) {
	actor, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	var req service.AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Assign(owner, actor.ID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// ReturnAsset handles POST /assets/:id/return
// @Summary Return an asset to storage
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} service.AssetResponse "Successfully returned asset"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /assets/{id}/return [post]
func (h *AssetHandler) ReturnAsset(c *gin.Context) {
	actor, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	asset, err := h.assetService.Return(owner, actor.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAssetStatus handles POST /assets/:id/status
// @Summary Change an asset's status
// @Description Quick status change with an optional assignee change in the same step
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param status body service.UpdateStatusRequest true "New status"
// @Success 200 {object} service.AssetResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /assets/{id}/status [post]
func (h *AssetHandler) UpdateAssetStatus(c *gin.Context) {
	actor, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.UpdateStatus(owner, actor.ID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetAssetHistory handles GET /assets/:id/history
// @Summary Get an asset's audit trail
// @Description List the asset's recorded status and assignment changes, newest first
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {array} service.AssetHistoryResponse "Successfully retrieved history"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /assets/{id}/history [get]
func (h *AssetHandler) GetAssetHistory(c *gin.Context) {
	_, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	history, err := h.assetService.GetHistory(owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// DeleteAsset handles DELETE /assets/:id
// @Summary Delete an asset
// @Description Delete an asset together with its history
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 204 "Successfully deleted asset"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	_, owner, ok := resolveOwner(c, h.accountService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	if err := h.assetService.Delete(owner, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
