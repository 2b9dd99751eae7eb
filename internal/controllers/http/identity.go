package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

const actorKey = "actor"

// Identity reads the actor the upstream session layer resolved. It only
// records the identity; role enforcement happens per route in RequireRole.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.GetHeader("X-Actor-Id"), 10, 64)
		role := domain.Role(c.GetHeader("X-Actor-Role"))
		if err == nil && role.Valid() {
			c.Set(actorKey, domain.Actor{ID: id, Role: role})
		}
		c.Next()
	}
}

// RequireRole is the single authorization check for a route: it runs before
// any resource lookup or field validation.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentActor(c)
		if !ok {
			abortWithError(c, apperr.ErrLoginRequired)
			return
		}
		if actor.Role != role {
			if role == domain.RoleOwner {
				abortWithError(c, apperr.ErrOwnerOnly)
			} else {
				abortWithError(c, apperr.ErrCustomerOnly)
			}
			return
		}
		c.Next()
	}
}

func currentActor(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
