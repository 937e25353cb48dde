package common

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
)

// Context keys
const ContextIdentityKey = "identity"

// Identity is the minimal view of the caller attached after token
// verification.
type Identity struct {
	ID    uint
	Role  user.Role
	Phone string
}

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(ContextIdentityKey, id)
}

// GetIdentity retrieves the authenticated caller from the Gin context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(ContextIdentityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// CurrentIdentity is GetIdentity for handlers behind AuthMiddleware; a
// missing identity is reported as Unauthorized.
func CurrentIdentity(c *gin.Context) (Identity, error) {
	id, ok := GetIdentity(c)
	if !ok {
		return Identity{}, apperr.Unauthorized("authentication required")
	}
	return id, nil
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(id), nil
}
