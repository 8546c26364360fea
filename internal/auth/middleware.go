package auth

import (
	"errors"
	"net/http"
	"strings"

	"asset-tracker-backend/internal/database/models"
	"asset-tracker-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service     *AuthService
	accountRepo repository.AccountRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, accountRepo repository.AccountRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{service: service, accountRepo: accountRepo}
}

// RequireAuth validates the bearer token and loads the full account into
// the request context. A token whose account was deleted (a removed team
// member) is rejected the same way as an invalid one.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		account, err := m.accountRepo.GetByID(claims.AccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
			}
			c.Abort()
			return
		}

		c.Set("account", account)
		c.Set("account_id", account.ID)
		c.Set("account_email", account.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// GetAccount is a helper function to extract the authenticated account
// from context.
func GetAccount(c *gin.Context) (*models.Account, bool) {
	value, exists := c.Get("account")
	if !exists {
		return nil, false
	}

	account, ok := value.(*models.Account)
	return account, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
