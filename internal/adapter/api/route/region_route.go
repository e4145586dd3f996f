package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupRegionRoutes configura as rotas para o módulo de regionais
func SetupRegionRoutes(router *gin.RouterGroup, regionController *controller.RegionController, branchController *controller.BranchController) {
	regionRouter := router.Group("/regions")
	regionRouter.Use(auth.Middleware())
	{
		regionRouter.GET("/:id", regionController.GetByID)
		regionRouter.PUT("/:id", regionController.Update)
		regionRouter.PATCH("/:id/status/:status", regionController.UpdateStatus)

		// Agências aninhadas à regional
		regionRouter.GET("/:id/branches", branchController.ListByRegion)
	}
}
