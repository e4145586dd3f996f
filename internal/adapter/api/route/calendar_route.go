package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/pkg/auth"
)

// SetupCalendarRoutes configura as rotas para o módulo de calendários de trabalho
func SetupCalendarRoutes(router *gin.RouterGroup, calendarController *controller.CalendarController, assignmentController *controller.AssignmentController) {
	calendarRouter := router.Group("/calendars")
	calendarRouter.Use(auth.Middleware())
	{
		calendarRouter.POST("", calendarController.Create)
		calendarRouter.GET("", calendarController.List)
		calendarRouter.GET("/default", calendarController.GetDefault)
		calendarRouter.GET("/:id", calendarController.GetByID)
		calendarRouter.PUT("/:id", calendarController.Update)
		calendarRouter.PATCH("/:id/status/:status", calendarController.UpdateStatus)
	}

	assignmentRouter := router.Group("/calendar-assignments")
	assignmentRouter.Use(auth.Middleware())
	{
		assignmentRouter.POST("", assignmentController.Create)
		assignmentRouter.GET("", assignmentController.ListByTarget)
		assignmentRouter.GET("/resolve", assignmentController.Resolve)
		assignmentRouter.GET("/:id", assignmentController.GetByID)
		assignmentRouter.PATCH("/:id/status/:status", assignmentController.UpdateStatus)
	}
}
