package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-management/internal/core/auth"
	"go-user-management/internal/domain"
	resp "go-user-management/internal/transport/http/response"
)

const keyCaller = "caller"

// AuthBearer resolves the caller from the Authorization header. Requests
// without a recognized prefix pass through as anonymous; protected routes
// reject them downstream. A present-but-invalid token fails the whole request
// with 401 — it must never degrade to anonymous. On success the user is
// re-read from the store so the identity carries live roles, not the ones
// frozen into the token.
func AuthBearer(codec *auth.Codec, users domain.UserRepository, l *zap.Logger) gin.HandlerFunc {
	prefix := codec.TokenType + " "
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.Next()
			return
		}

		id, err := codec.Validate(strings.TrimSpace(strings.TrimPrefix(header, prefix)))
		if err != nil {
			l.Warn("token rejected", zap.Error(err))
			resp.Fail(c, http.StatusUnauthorized, "invalid token")
			return
		}

		u, err := users.FindByEmail(c.Request.Context(), id.Email)
		if err != nil {
			l.Error("caller lookup failed", zap.Error(err))
			resp.Fail(c, http.StatusInternalServerError, "")
			return
		}
		if u == nil {
			// 持有者已被删除，令牌随之失效
			resp.Fail(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(keyCaller, &auth.CallerIdentity{
			UID:   u.UID,
			Email: u.Email,
			Roles: append([]string(nil), u.Roles...),
		})
		c.Next()
	}
}

// Caller returns the authenticated identity, or nil for anonymous requests.
func Caller(c *gin.Context) *auth.CallerIdentity {
	v, ok := c.Get(keyCaller)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.CallerIdentity)
	return id
}
