package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
)

const identityKey = "identity"

// IdentityResolver turns a raw bearer token into the caller's identity.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (models.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved identity on the context for the handlers.
func RequireAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondAppError(c, utils.Unauthenticated("Authorization header missing"))
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			utils.RespondAppError(c, utils.Unauthenticated("Invalid authorization header"))
			c.Abort()
			return
		}

		identity, err := resolver.ResolveIdentity(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			utils.RespondAppError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireAuth. The second
// result is false on routes that are not behind RequireAuth.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}
