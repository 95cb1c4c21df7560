package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smeta_admin/internal/infrastructure/backend"
	"smeta_admin/internal/usecase"
	"smeta_admin/pkg"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authorization bearer token is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Token was rejected by the backend", http.StatusUnauthorized)
	errNotAllowed   = pkg.NewDomainErrorSimple("FORBIDDEN", "This area is restricted to supervisors", http.StatusForbidden)
)

// BearerToken lifts the caller's bearer token off the Authorization header
// into the request context, where the backend client picks it up per call.
// The token is never stored anywhere else.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		ctx := backend.WithToken(c.Request.Context(), token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireSupervisor resolves the caller against the backend and rejects
// anyone whose role is not SUPERVISOR. Runs after BearerToken.
func RequireSupervisor(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := auth.RequireSupervisor(c.Request.Context()); err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
