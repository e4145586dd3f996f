package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/banking-org/internal/adapter/api/controller"
	"github.com/hugohenrick/banking-org/internal/adapter/api/route"
	"github.com/hugohenrick/banking-org/internal/adapter/repository"
	"github.com/hugohenrick/banking-org/internal/domain/audit"
	"github.com/hugohenrick/banking-org/internal/domain/calendar"
	"github.com/hugohenrick/banking-org/internal/domain/holiday"
	"github.com/hugohenrick/banking-org/internal/domain/hours"
	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/hugohenrick/banking-org/pkg/bankctx"
	"github.com/hugohenrick/banking-org/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Aplicar migrações pendentes
	if err := database.RunMigrations(); err != nil {
		return nil, err
	}

	// Criar repositórios
	bankRepo := repository.NewPostgresBankRepository(db)
	divisionRepo := repository.NewPostgresDivisionRepository(db)
	regionRepo := repository.NewPostgresRegionRepository(db)
	branchRepo := repository.NewPostgresBranchRepository(db)
	departmentRepo := repository.NewPostgresDepartmentRepository(db)
	positionRepo := repository.NewPostgresPositionRepository(db)
	hoursRepo := repository.NewPostgresHoursRepository(db)
	holidayRepo := repository.NewPostgresHolidayRepository(db)
	calendarRepo := repository.NewPostgresCalendarRepository(db)
	assignmentRepo := repository.NewPostgresAssignmentRepository(db)
	auditRepo := repository.NewPostgresAuditRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	hierarchy := repository.NewPostgresHierarchyLookup(db)

	// Criar serviços de domínio
	recorder := audit.NewRecorder(auditRepo, log)
	hoursService := hours.NewService(hoursRepo, hierarchy)
	holidayService := holiday.NewService(holidayRepo, hierarchy)
	resolver := calendar.NewResolver(calendarRepo, assignmentRepo, hierarchy)
	operatingService := calendar.NewOperatingService(resolver, hoursService, holidayService)

	// Criar validador de banco para o middleware de escopo
	bankValidator := repository.NewBankValidator(bankRepo)

	// Criar controllers
	bankController := controller.NewBankController(bankRepo, recorder)
	divisionController := controller.NewDivisionController(divisionRepo, recorder)
	regionController := controller.NewRegionController(regionRepo, recorder)
	branchController := controller.NewBranchController(branchRepo, operatingService, recorder)
	departmentController := controller.NewDepartmentController(departmentRepo, recorder)
	positionController := controller.NewPositionController(positionRepo, departmentRepo, recorder)
	hoursController := controller.NewHoursController(hoursRepo, hoursService, recorder)
	holidayController := controller.NewHolidayController(holidayRepo, holidayService, recorder)
	calendarController := controller.NewCalendarController(calendarRepo, recorder)
	assignmentController := controller.NewAssignmentController(assignmentRepo, resolver, recorder)
	auditController := controller.NewAuditController(auditRepo)
	authController := controller.NewAuthController(userRepo, log)
	userController := controller.NewUserController(userRepo)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "bank-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas de plataforma: não exigem o cabeçalho bank-id
	route.SetupBankRoutes(api, bankController)
	route.SetupAuthRoutes(api, authController)

	// Rotas com escopo de banco: exigem o cabeçalho bank-id validado
	bankScoped := api.Group("")
	bankScoped.Use(bankctx.Middleware(bankValidator))

	route.SetupSetupRoutes(bankScoped, userController)
	route.SetupUserRoutes(bankScoped, userController)
	route.SetupDivisionRoutes(bankScoped, divisionController, regionController)
	route.SetupRegionRoutes(bankScoped, regionController, branchController)
	route.SetupBranchRoutes(bankScoped, branchController, departmentController, hoursController, auditController)
	route.SetupDepartmentRoutes(bankScoped, departmentController, positionController)
	route.SetupPositionRoutes(bankScoped, positionController)
	route.SetupHolidayRoutes(bankScoped, holidayController)
	route.SetupCalendarRoutes(bankScoped, calendarController, assignmentController)
	route.SetupAuditRoutes(bankScoped, auditController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
