package employee

import (
	"go-emprec/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouteOptions struct {
	Logger *zap.Logger
	// RateLimit is per client IP; zero disables it.
	RateLimit rate.Limit
	Burst     int
	// Idempotency guards POST; nil when Redis is not configured.
	Idempotency gin.HandlerFunc
}

func RegisterRoutes(r gin.IRouter, handler *Handler, opts RouteOptions) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}

	employees := r.Group("/employees")
	employees.Use(middleware.RequestID())
	employees.Use(middleware.ContextLogger(logger))
	employees.Use(middleware.RateLimitByIP(opts.RateLimit, opts.Burst))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/by-number/:employeeNo", handler.GetByEmployeeNo)
		employees.GET("/:id", handler.GetByID)

		create := []gin.HandlerFunc{handler.Create}
		if opts.Idempotency != nil {
			create = append([]gin.HandlerFunc{opts.Idempotency}, create...)
		}
		employees.POST("", create...)

		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
