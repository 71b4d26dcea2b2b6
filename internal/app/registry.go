package app

import (
	"hrms/internal/department"
	"hrms/internal/employee"
	"hrms/internal/position"
	"hrms/internal/probation"
	"hrms/internal/report"
	"hrms/internal/resignation"
	"hrms/internal/transfer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, rdb *redis.Client) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(db)
	positionRepo := position.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	probationRepo := probation.NewRepository(db)
	transferRepo := transfer.NewRepository(db)
	resignationRepo := resignation.NewRepository(db)
	reportRepo := report.NewRepository(db)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb)
	positionService := position.NewService(positionRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	probationService := probation.NewService(probationRepo)
	transferService := transfer.NewService(db, transferRepo)
	resignationService := resignation.NewService(db, resignationRepo)
	reportService := report.NewService(reportRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	positionHandler := position.NewHandler(positionService)
	employeeHandler := employee.NewHandler(employeeService)
	probationHandler := probation.NewHandler(probationService)
	transferHandler := transfer.NewHandler(transferService)
	resignationHandler := resignation.NewHandler(resignationService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		department.RegisterRoutes(api, departmentHandler)
		position.RegisterRoutes(api, positionHandler)
		employee.RegisterRoutes(api, employeeHandler)
		probation.RegisterRoutes(api, probationHandler)
		transfer.RegisterRoutes(api, transferHandler)
		resignation.RegisterRoutes(api, resignationHandler)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
