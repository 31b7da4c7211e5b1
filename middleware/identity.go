package middleware

import (
	"net/http"

	"roombook/models"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// IdentityMiddleware reads the caller's identity from gateway-injected
// headers. Authentication happens upstream; requests arriving here without
// an identity were not routed through the gateway and are rejected.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity headers"})
			return
		}
		c.Set(actorKey, models.Actor{
			ID:    userID,
			Name:  c.GetHeader("X-User-Name"),
			Admin: c.GetHeader("X-User-Role") == "admin",
		})
		c.Next()
	}
}

// AdminMiddleware gates a route group to administrators. It must run after
// IdentityMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			return
		}
		c.Next()
	}
}

// GetActor retrieves the actor placed on the context by IdentityMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
