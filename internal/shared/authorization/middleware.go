package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal stored by the auth middleware.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// RequireRole aborts with 403 unless the resolved principal has the role.
func RequireRole(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok || p.Role() != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"type":    "forbidden",
					"message": role.String() + " access required",
				},
			})
			return
		}
		c.Next()
	}
}
