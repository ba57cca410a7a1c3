package request

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	redisClient *redis.Client,
	logger *zap.Logger,
) {
	requests := r.Group("/requests")
	requests.Use(middleware.ExtractUserID())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("/normal",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "request", "create"),
			middleware.Idempotency(redisClient),
			handler.SubmitNormal,
		)
		requests.POST("/occasional",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "request", "create"),
			middleware.Idempotency(redisClient),
			handler.SubmitOccasional,
		)
		requests.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.ListMine,
		)
		requests.GET("/all",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "request", "read_all"),
			handler.ListAll,
		)
		requests.GET("/occasions",
			middleware.RateLimitByUser(3, 10),
			handler.Occasions,
		)
		requests.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)
		requests.POST("/:id/accept",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "request", "decide"),
			handler.Accept,
		)
		requests.POST("/:id/reject",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "request", "decide"),
			handler.Reject,
		)
		requests.POST("/:id/cancel",
			middleware.RateLimitByUser(1, 5),
			handler.Cancel,
		)
	}
}
