package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
)

// RequireRole must run after RequireAuth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := CurrentIdentity(c)
		if !exists {
			utils.RespondAppError(c, utils.Unauthenticated("Authorization header missing"))
			c.Abort()
			return
		}

		switch role {
		case models.RoleAdmin:
			if !identity.IsAdmin() {
				utils.RespondAppError(c, utils.AdminRequired())
				c.Abort()
				return
			}
		case models.RoleClient:
			// every authenticated user qualifies
		}

		c.Next()
	}
}
