package handlers

import (
	"net/http"

	"taskmanager/internal/iap"

	"github.com/gin-gonic/gin"
)

// WhoAmI reports the identity injected by the IAP proxy. The proxy normally
// sets headers, but some configurations forward the identity as query
// parameters instead, so both are checked.
func (h *Handler) WhoAmI(c *gin.Context) {
	email := c.GetHeader(iap.EmailHeader)
	if email == "" {
		email = c.Query(iap.EmailHeader)
	}
	userID := c.GetHeader(iap.UserIDHeader)
	if userID == "" {
		userID = c.Query(iap.UserIDHeader)
	}

	c.JSON(http.StatusOK, iap.FromValues(email, userID))
}
