package routes

import (
	"log"
	"strconv"
	"time"

	_ "smeta_admin/docs" // This will be auto-generated
	"smeta_admin/internal/adapter/http/handlers"
	"smeta_admin/internal/config"
	"smeta_admin/internal/infrastructure/backend"
	"smeta_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	client := backend.New(cfg.BackendBaseURL,
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithBodyLogging(cfg.BackendLogBody),
	)

	authUseCase := usecase.NewAuthUseCase(client)
	directoryUseCase := usecase.NewDirectoryUseCase(client, client)
	editorUseCase := usecase.NewEstimateEditorUseCase(client)

	startIdleSweep(editorUseCase, cfg.EditorIdleTTL, cfg.EditorSweepTick)

	authHandler := handlers.NewAuthHandler(authUseCase)
	directoryHandler := handlers.NewDirectoryHandler(directoryUseCase)
	editorHandler := handlers.NewEstimateEditorHandler(editorUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/login", authHandler.Login)

	// Everything past the login screen needs a token and the supervisor role.
	admin := v1.Group("")
	admin.Use(handlers.BearerToken(), handlers.RequireSupervisor(authUseCase))
	addAdminRoutes(admin, authHandler, directoryHandler, editorHandler)
}

// startIdleSweep evicts editor sessions nobody touched for the configured
// TTL. Abandoned browser tabs are the normal case, not the exception.
func startIdleSweep(editor *usecase.EstimateEditorUseCase, ttl, tick time.Duration) {
	if ttl <= 0 || tick <= 0 {
		return
	}
	go func() {
		for range time.Tick(tick) {
			editor.SweepIdle(ttl)
		}
	}()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
