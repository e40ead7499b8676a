package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	redisClient *redis.Client,
) {
	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	{
		runs.GET("", middleware.RBACAuthorize(rbacService, "payroll_run", "read"), handler.GetAllRuns)
		runs.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll_run", "read"), handler.GetRunById)
		runs.GET("/:id/payslips", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetRunPayslips)
		runs.POST("",
			middleware.RBACAuthorize(rbacService, "payroll_run", "create"),
			middleware.Idempotency(redisClient),
			handler.CreateRun,
		)
		runs.POST("/:id/process",
			middleware.RBACAuthorize(rbacService, "payroll_run", "process"),
			middleware.Idempotency(redisClient),
			handler.ProcessRun,
		)
		runs.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "payroll_run", "update"), handler.UpdateRunStatus)
		runs.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll_run", "delete"), handler.DeleteRun)
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetPayslipById)
		payslips.GET("/:id/pdf", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.DownloadPayslip)
		payslips.PATCH("/:id/payment-status",
			middleware.RBACAuthorize(rbacService, "payslip", "update"),
			middleware.Idempotency(redisClient),
			handler.UpdatePaymentStatus,
		)
	}
}
