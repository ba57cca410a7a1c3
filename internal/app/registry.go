package app

import (
	"database/sql"
	"net/http"

	"go-leave/internal/acceptance"
	"go-leave/internal/config"
	"go-leave/internal/history"
	"go-leave/internal/holiday"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/request"
	"go-leave/internal/shared/response"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	acceptanceRepo := acceptance.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.SeedDefaults(); err != nil {
		return err
	}

	// --- Services ---
	userService := user.NewService(userRepo, logger)
	holidayService := holiday.NewService(holidayRepo, rdb, logger)
	historyService := history.NewService(historyRepo, logger)
	acceptanceService := acceptance.NewService(acceptanceRepo, logger)
	requestService := request.NewService(
		db,
		requestRepo,
		acceptanceService,
		historyService,
		holidayService,
		userService,
		outboxRepo,
		logger,
	)

	// --- Handlers ---
	userHandler := user.NewHandler(userService, logger)
	holidayHandler := holiday.NewHandler(holidayService, logger)
	historyHandler := history.NewHandler(historyService, logger)
	acceptanceHandler := acceptance.NewHandler(requestService, logger)
	requestHandler := request.NewHandler(requestService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		holiday.RegisterRoutes(api, holidayHandler, rbacService, logger)
		history.RegisterRoutes(api, historyHandler, rbacService, logger)
		acceptance.RegisterRoutes(api, acceptanceHandler, rbacService, logger)
		request.RegisterRoutes(api, requestHandler, rbacService, rdb, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, logger)
	}

	return nil
}
