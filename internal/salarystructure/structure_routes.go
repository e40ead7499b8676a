package salarystructure

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
	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetAllByEmployee)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetById)
		structures.POST("",
			middleware.RBACAuthorize(rbacService, "salary_structure", "create"),
			middleware.Idempotency(redisClient),
			handler.Create,
		)
	}
}
