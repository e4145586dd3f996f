package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupHolidayRoutes configura as rotas para o módulo de feriados
func SetupHolidayRoutes(router *gin.RouterGroup, holidayController *controller.HolidayController) {
	holidayRouter := router.Group("/holidays")
	holidayRouter.Use(auth.Middleware())
	{
		holidayRouter.POST("", holidayController.Create)
		holidayRouter.GET("", holidayController.List)
		holidayRouter.GET("/check", holidayController.Check)
		holidayRouter.GET("/:id", holidayController.GetByID)
		holidayRouter.PATCH("/:id/status/:status", holidayController.UpdateStatus)
	}
}
