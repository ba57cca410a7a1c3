package history

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	history := r.Group("/history")
	history.Use(middleware.ExtractUserID())
	history.Use(middleware.ContextLogger(logger))
	{
		history.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "history", "read"),
			handler.List,
		)
		history.GET("/balance",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "history", "read"),
			handler.Balance,
		)
		history.POST("/adjust",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "history", "adjust"),
			handler.Adjust,
		)
	}
}
