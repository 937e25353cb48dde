package rmiddleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/common"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
)

// Require lets the request through only if the caller's role grants cap.
// It must run after middleware.AuthMiddleware.
func Require(cap user.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.GetIdentity(c)
		if !ok {
			responses.HandleError(c, apperr.Unauthorized("authentication required"))
			return
		}
		if !id.Role.Can(cap) {
			responses.HandleError(c, apperr.Forbidden("access denied"))
			return
		}
		c.Next()
	}
}

// BrowsePlayersMiddleware is a convenience middleware for scout, coach or admin access
func BrowsePlayersMiddleware() gin.HandlerFunc {
	return Require(user.CapBrowsePlayers)
}

// RaterMiddleware is a convenience middleware for scout or coach access
func RaterMiddleware() gin.HandlerFunc {
	return Require(user.CapRatePlayers)
}

// PlayerMiddleware is a convenience middleware for roles that own a player profile
func PlayerMiddleware() gin.HandlerFunc {
	return Require(user.CapManagePlayerProfile)
}
