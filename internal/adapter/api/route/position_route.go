package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupPositionRoutes configura as rotas para o módulo de cargos
func SetupPositionRoutes(router *gin.RouterGroup, positionController *controller.PositionController) {
	positionRouter := router.Group("/positions")
	positionRouter.Use(auth.Middleware())
	{
		positionRouter.GET("/:id", positionController.GetByID)
		positionRouter.PUT("/:id", positionController.Update)
		positionRouter.PATCH("/:id/status/:status", positionController.UpdateStatus)
	}
}
