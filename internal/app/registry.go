package app

import (
	"database/sql"
	"path/filepath"

	"go-payroll/internal/attendance"
	"go-payroll/internal/component"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/organization"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	componentRepo := component.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	organizationService := organization.NewService(organizationRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	attendanceService := attendance.NewService(attendanceRepo)
	componentService := component.NewService(db, componentRepo, rdb)
	structureService := salarystructure.NewService(db, structureRepo, componentRepo)

	generator := payroll.NewGenerator(structureService, attendanceService, employeeService)
	payrollService := payroll.NewService(db, payrollRepo, generator, organizationService, counterRepo, outboxRepo)

	// --- Handlers ---
	componentHandler := component.NewHandler(componentService)
	structureHandler := salarystructure.NewHandler(structureService)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		component.RegisterRoutes(api, componentHandler, rbacService)
		salarystructure.RegisterRoutes(api, structureHandler, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
