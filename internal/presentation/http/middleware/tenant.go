package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/response"
)

// ExtractTenantFromHost pulls the store slug out of the subdomain,
// e.g. "downtown.shipos.app" -> "downtown".
func ExtractTenantFromHost(host string) (string, error) {
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return "", errors.New("host has no store subdomain")
	}
	return parts[0], nil
}

// TenantMiddleware resolves the store from the request's subdomain, checks
// the signed-in user is a member, and stores the tenant ID in both the gin
// and request contexts. Requests on a bare host pass through with no store
// set; the repository scopes then match nothing rather than everything.
func TenantMiddleware(tenantRepo repository.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, err := ExtractTenantFromHost(c.Request.Host)
		if err != nil {
			c.Set("tenant_id", uuid.Nil)
			c.Next()
			return
		}

		tenant, err := tenantRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil || tenant == nil {
			response.NotFound(c, "Store not found")
			c.Abort()
			return
		}

		if userID := currentUserID(c); userID != uuid.Nil {
			isMember, _ := tenantRepo.IsMember(c.Request.Context(), tenant.ID, userID)
			if !isMember {
				response.Forbidden(c, "Access denied to this store")
				c.Abort()
				return
			}
		}

		c.Set("tenant_id", tenant.ID)
		c.Set("tenant", tenant)

		// Services and repositories read the tenant from the request context.
		ctx := infraRepo.WithTenant(c.Request.Context(), tenant.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func currentUserID(c *gin.Context) uuid.UUID {
	val, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetTenantID returns the resolved store ID, or uuid.Nil when none was set.
func GetTenantID(c *gin.Context) uuid.UUID {
	val, ok := c.Get("tenant_id")
	if !ok {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
