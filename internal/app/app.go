package app

import (
	"context"
	"database/sql"
	"errors"

	"go-emprec/internal/config"
	"go-emprec/internal/shared/connection"
	"go-emprec/internal/shared/migration"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App holds the connections opened by BuildApp.
type App struct {
	DB  *sql.DB
	RDB *redis.Client
}

// Close releases every connection held by a.
func (a *App) Close() error {
	var errs []error
	if a.RDB != nil {
		errs = append(errs, a.RDB.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// BuildApp connects to the stores, optionally applies migrations, and
// mounts health checks and the employee routes on router.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	a := &App{DB: sqlDB}

	if cfg.RunMigrations {
		if err := migration.Run(migration.ActionUp, cfg.MigrationsDir, cfg.Database.URL(), logger); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	checks := map[string]Check{
		"postgres": sqlDB.PingContext,
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries, logger)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.RDB = rdb
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		log.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	registerHealth(router, checks)
	registerModules(router, moduleDeps{
		db:             sqlDB,
		gormDB:         gormDB,
		rdb:            a.RDB,
		logger:         logger,
		rateLimit:      rate.Limit(cfg.RateLimitPerSecond),
		rateBurst:      cfg.RateLimitBurst,
		idempotencyTTL: cfg.IdempotencyTTL,
	})

	return a, nil
}
