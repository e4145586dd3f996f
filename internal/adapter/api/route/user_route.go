package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	userRouter.Use(auth.Middleware())
	{
		userRouter.POST("", userController.Create)
		userRouter.GET("", userController.List)
		userRouter.GET("/:id", userController.GetByID)
		userRouter.PATCH("/:id/status/:status", userController.UpdateStatus)
	}
}
