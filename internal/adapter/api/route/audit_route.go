package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupAuditRoutes configura as rotas para consulta da trilha de auditoria
func SetupAuditRoutes(router *gin.RouterGroup, auditController *controller.AuditController) {
	auditRouter := router.Group("/audit-logs")
	auditRouter.Use(auth.Middleware())
	{
		auditRouter.GET("", auditController.ListByBank)
	}
}
