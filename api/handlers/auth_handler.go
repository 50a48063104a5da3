package handlers

import (
	"net/http"

	"example.com/fleetdesk/api/middleware"
	"example.com/fleetdesk/config"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the identity endpoints. Login, refresh and token
// validation all live with the external identity provider; this handler only
// reflects parsed claims and hands out the logout redirect.
type AuthHandler struct {
	identity config.IdentityConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(identity config.IdentityConfig) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Me returns the operator identity parsed from the ID token
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No identity in request",
		})
		return
	}
	c.JSON(http.StatusOK, identity)
}

// Logout returns the provider redirect the UI should navigate to
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"redirect": h.identity.LogoutRedirectURL,
	})
}
