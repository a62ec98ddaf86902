package middleware

import "github.com/gin-gonic/gin"

// actorKey is the key used to store the acting user's identifier in the Gin
// context. Using a custom type prevents collisions.
const actorKey = contextKey("actorID")

// ActorHeader carries the identifier recorded in audit fields. The app has no
// account system; the header is an operator-supplied label.
const ActorHeader = "X-Actor-ID"

// defaultActor is recorded when no actor header is present.
const defaultActor = "system"

// ActorMiddleware resolves the acting user for audit trails from the request
// header, defaulting when absent.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			actor = defaultActor
		}
		c.Set(string(actorKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user ID from the Gin context.
// It returns the default actor when the middleware did not run.
func GetActorFromContext(c *gin.Context) string {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		return defaultActor
	}

	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return defaultActor
	}
	return actor
}
