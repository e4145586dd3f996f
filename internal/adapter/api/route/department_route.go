package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupDepartmentRoutes configura as rotas para o módulo de departamentos
func SetupDepartmentRoutes(router *gin.RouterGroup, departmentController *controller.DepartmentController, positionController *controller.PositionController) {
	departmentRouter := router.Group("/departments")
	departmentRouter.Use(auth.Middleware())
	{
		departmentRouter.GET("/:id", departmentController.GetByID)
		departmentRouter.PUT("/:id", departmentController.Update)
		departmentRouter.PATCH("/:id/status/:status", departmentController.UpdateStatus)

		// Cargos aninhados ao departamento
		departmentRouter.POST("/:id/positions", positionController.Create)
		departmentRouter.GET("/:id/positions", positionController.ListByDepartment)
	}
}
