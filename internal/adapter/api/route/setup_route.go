package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
)

// SetupSetupRoutes configura as rotas para provisionamento inicial
func SetupSetupRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	setupRouter := router.Group("/setup")
	{
		// Cria o primeiro administrador de um banco; exige apenas o cabeçalho bank-id
		setupRouter.POST("/admin", userController.CreateAdmin)
	}
}
