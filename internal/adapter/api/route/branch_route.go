package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupBranchRoutes configura as rotas para o módulo de agências
func SetupBranchRoutes(
	router *gin.RouterGroup,
	branchController *controller.BranchController,
	departmentController *controller.DepartmentController,
	hoursController *controller.HoursController,
	auditController *controller.AuditController,
) {
	branchRouter := router.Group("/branches")
	branchRouter.Use(auth.Middleware())
	{
		branchRouter.POST("", branchController.Create)
		branchRouter.GET("", branchController.List)
		branchRouter.GET("/code/:code", branchController.GetByCode)
		branchRouter.GET("/:id", branchController.GetByID)
		branchRouter.PUT("/:id", branchController.Update)
		branchRouter.POST("/:id/close", branchController.Close)
		branchRouter.PATCH("/:id/status/:status", branchController.UpdateStatus)
		branchRouter.GET("/:id/operating-status", branchController.OperatingStatus)

		// Departamentos aninhados à agência
		branchRouter.POST("/:id/departments", departmentController.Create)
		branchRouter.GET("/:id/departments", departmentController.ListByBranch)

		// Horários de funcionamento da agência
		branchRouter.PUT("/:id/hours", hoursController.Upsert)
		branchRouter.GET("/:id/hours", hoursController.ListByBranch)
		branchRouter.GET("/:id/hours/open", hoursController.IsOpen)

		// Trilha de auditoria da agência
		branchRouter.GET("/:id/audit-logs", auditController.ListByBranch)
	}
}
