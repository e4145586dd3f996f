package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupBankRoutes configura as rotas para o módulo de bancos
func SetupBankRoutes(router *gin.RouterGroup, bankController *controller.BankController) {
	// Rotas de plataforma: não exigem o cabeçalho bank-id
	bankRouter := router.Group("/banks")
	bankRouter.Use(auth.Middleware())
	{
		bankRouter.POST("", bankController.Create)
		bankRouter.GET("", bankController.List)
		bankRouter.GET("/code/:code", bankController.GetByCode)
		bankRouter.GET("/:id", bankController.GetByID)
		bankRouter.PUT("/:id", bankController.Update)
		bankRouter.PATCH("/:id/status/:status", bankController.UpdateStatus)
	}
}
