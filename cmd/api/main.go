//
// @title FindMe Intake API
// @version 1.0
// @description Backend-for-frontend for the missing-person report and consultation forms
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
// @description Optional "Bearer <token>" from X-Session-Token; browsers use the findme_session cookie
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/xyz-asif/findme/docs"
	"github.com/xyz-asif/findme/internal/config"
	"github.com/xyz-asif/findme/internal/middleware"
	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/routes"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Title = "FindMe Intake API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	//If we are running in production, be quiet and stop logging so much.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// sweepers and websocket streams live as long as this context
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	// Swagger documentation (modern UI configs)
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	// Register all routes
	routes.SetupRoutes(appCtx, router, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		logger.Info("Server starting on port %s (backend %s, report transport %s)", cfg.Port, cfg.APIBaseURL, cfg.ReportTransport)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopApp()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
