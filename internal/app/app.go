package app

import (
	"os"

	"hrms/internal/department"
	"hrms/internal/employee"
	"hrms/internal/middleware"
	"hrms/internal/position"
	"hrms/internal/probation"
	"hrms/internal/resignation"
	"hrms/internal/shared/connection"
	"hrms/internal/transfer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects infrastructure, runs migrations and mounts all module
// routes on the given engine.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(connection.Config{
		Driver:   os.Getenv("DB_DRIVER"),
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		Path:     os.Getenv("DB_PATH"),
	}, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(
		&department.Department{},
		&position.Position{},
		&employee.Employee{},
		&probation.ProbationPeriod{},
		&transfer.PositionTransfer{},
		&resignation.Resignation{},
	); err != nil {
		return err
	}

	// Redis is an optional read cache. Without it the services fall back to
	// the database on every read.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	return registerModules(router, db, rdb)
}
