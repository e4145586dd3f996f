package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupDivisionRoutes configura as rotas para o módulo de diretorias
func SetupDivisionRoutes(router *gin.RouterGroup, divisionController *controller.DivisionController, regionController *controller.RegionController) {
	divisionRouter := router.Group("/divisions")
	divisionRouter.Use(auth.Middleware())
	{
		divisionRouter.POST("", divisionController.Create)
		divisionRouter.GET("", divisionController.List)
		divisionRouter.GET("/:id", divisionController.GetByID)
		divisionRouter.PUT("/:id", divisionController.Update)
		divisionRouter.PATCH("/:id/status/:status", divisionController.UpdateStatus)

		// Regionais aninhadas à diretoria
		divisionRouter.POST("/:id/regions", regionController.Create)
		divisionRouter.GET("/:id/regions", regionController.ListByDivision)
	}
}
