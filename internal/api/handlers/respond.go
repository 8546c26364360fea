package handlers

import (
	"errors"
	"net/http"
	"strings"

	"asset-tracker-backend/internal/auth"
	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	playgroundvalidator "github.com/go-playground/validator/v10"
)

// respondError maps service errors onto HTTP statuses. Entitlement
// denials get a dedicated 402 with an upgrade flag so clients can render
// an upsell instead of an error page.
func respondError(c *gin.Context, err error) {
	var denied *apperrors.EntitlementDeniedError
	if errors.As(err, &denied) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":            denied.Error(),
			"feature":          denied.Feature,
			"upgrade_required": true,
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrInvitationConsumed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), isValidationFailure(err), errors.Is(err, apperrors.ErrInvalidAssetStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func isValidationFailure(err error) bool {
	var fieldErrors playgroundvalidator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return true
	}
	return strings.Contains(err.Error(), "validation failed")
}

// currentAccount pulls the authenticated account set by the auth
// middleware. A miss means the route was wired without RequireAuth.
func currentAccount(c *gin.Context) (*models.Account, bool) {
	account, ok := auth.GetAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return account, true
}

// resolveOwner maps the authenticated principal to the account whose
// data the request operates on.
func resolveOwner(c *gin.Context, accounts service.AccountServiceInterface) (actor, owner *models.Account, ok bool) {
	actor, ok = currentAccount(c)
	if !ok {
		return nil, nil, false
	}

	owner, err := accounts.ResolveOwner(actor)
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return actor, owner, true
}
