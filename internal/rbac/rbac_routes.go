package rbac

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(middleware.ExtractUserID())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce",
			middleware.RateLimitByUser(5, 20),
			handler.Enforce,
		)
		group.GET("/roles/:role/permissions",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "rbac", "read"),
			handler.RolePermissions,
		)
	}
}
