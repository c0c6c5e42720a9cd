package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appidentity "github.com/kalori/backend/internal/application/identity"
	"github.com/kalori/backend/internal/domain/shared"
	"github.com/kalori/backend/internal/infrastructure/auth"
	"github.com/kalori/backend/internal/interfaces/http/dto"
)

// Context keys set by the auth middlewares
const (
	IdentityKey = "identity"
	AdminKey    = "admin"
)

// AdminAuth gates a route group behind the admin allow-list. On success the
// verified identity and matched admin row land in the gin context.
func AdminAuth(gate *appidentity.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := gate.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			abortAuthError(c, err)
			return
		}

		c.Set(IdentityKey, result.Identity)
		c.Set(AdminKey, result.Admin)
		c.Next()
	}
}

// UserAuth requires a verified identity token without any admin check
func UserAuth(gate *appidentity.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := gate.VerifyBearer(c.GetHeader("Authorization"))
		if err != nil {
			abortAuthError(c, err)
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the verified identity placed by an auth middleware
func GetIdentity(c *gin.Context) *auth.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if identity, ok := v.(*auth.Identity); ok {
			return identity
		}
	}
	return nil
}

func abortAuthError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.AbortWithStatusJSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Message))
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
}
