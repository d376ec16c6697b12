package app

import (
	"database/sql"
	"go-emprec/internal/employee"
	"go-emprec/internal/messaging/kafka"
	"go-emprec/internal/middleware"
	"go-emprec/internal/shared/counter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type moduleDeps struct {
	db     *sql.DB
	gormDB *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger

	rateLimit      rate.Limit
	rateBurst      int
	idempotencyTTL time.Duration
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(deps.gormDB)
	counterRepo := counter.NewRepository(deps.gormDB)
	outboxRepo := kafka.NewOutboxRepository(deps.db)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(deps.db, employeeRepo, counterRepo, outboxRepo, deps.logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, deps.logger)

	// --- Routes Registration ---
	opts := employee.RouteOptions{
		Logger:    deps.logger,
		RateLimit: deps.rateLimit,
		Burst:     deps.rateBurst,
	}
	if deps.rdb != nil {
		opts.Idempotency = middleware.Idempotency(deps.rdb, deps.idempotencyTTL, deps.logger.Named("idempotency"))
	}
	employee.RegisterRoutes(router, employeeHandler, opts)
}
