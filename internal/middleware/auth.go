package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/common"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
)

// TokenVerifier resolves a bearer token to the current user record.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*user.User, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's identity in the context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.HandleError(c, apperr.Unauthorized("authorization header is required"))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			responses.HandleError(c, apperr.Unauthorized("invalid authorization header format, expected: Bearer <token>"))
			return
		}

		u, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			responses.HandleError(c, err)
			return
		}

		common.SetIdentity(c, common.Identity{ID: u.ID, Role: u.Role, Phone: u.Phone})
		c.Next()
	}
}
