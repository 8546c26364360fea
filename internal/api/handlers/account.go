package handlers

import (
	"net/http"

	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for the account profile
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetProfile handles GET /profile
// @Summary Get the current account's profile
// @Description Get the caller's profile, including the plan values a team member inherits from its primary owner
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} service.ProfileResponse "Successfully retrieved profile"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /profile [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}

	profile, err := h.accountService.GetProfile(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
// @Summary Update the current account's profile
// @Description Update contact fields. An email change is staged for verification and does not replace the login email immediately.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} service.ProfileResponse "Successfully updated profile"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.accountService.UpdateProfile(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
