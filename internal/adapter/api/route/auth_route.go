package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Login e renovação de token não requerem autenticação
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh-token", authController.Refresh)

		authRouter.GET("/me", auth.Middleware(), authController.Me)
	}
}
