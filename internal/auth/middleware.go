package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stanislav-shchetinin/security-web/internal/httpx"
)

const identityKey = "identity"

// Identity is the request-scoped caller, established by RequireAuth and
// passed explicitly into service calls.
type Identity struct {
	Username string
	Role     string
}

// RequireAuth validates the bearer token and attaches the caller's identity
// to the request context. Requests without a valid token never reach the
// handlers behind it.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			httpx.Abort(c, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			httpx.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(identityKey, Identity{Username: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// CurrentIdentity returns the identity set by RequireAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}
