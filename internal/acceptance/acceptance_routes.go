package acceptance

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
	acceptances := r.Group("/acceptances")
	acceptances.Use(middleware.ExtractUserID())
	acceptances.Use(middleware.ContextLogger(logger))
	{
		acceptances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "acceptance", "read"),
			handler.ListPending,
		)
		acceptances.POST("/:id/accept",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "acceptance", "decide"),
			handler.Accept,
		)
		acceptances.POST("/:id/reject",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "acceptance", "decide"),
			handler.Reject,
		)
	}
}
