package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "aromapos/internal/core/context"
)

const (
	HeaderStaffID       = "X-Staff-Id"
	HeaderStaffUsername = "X-Staff-Username"
	HeaderStaffRole     = "X-Staff-Role"
)

// Identity propagates the till operator's identity into the request context.
// The POS runs on a trusted shop LAN: the desktop client identifies the
// logged-in staff member via headers after a /staff/verify check, and the
// audit trail records it. There is no token validation layer.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderStaffID)
		if userID == "" {
			c.Next()
			return
		}

		role := c.GetHeader(HeaderStaffRole)
		ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{
			UserID:   userID,
			Username: c.GetHeader(HeaderStaffUsername),
			Role:     role,
			IsAdmin:  role == "ADMIN",
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
