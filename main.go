package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"koshub/clients/accommodation"
	"koshub/clients/livingsupport"
	"koshub/config"
	"koshub/handlers"
	"koshub/middleware"
	"koshub/routes"
	"koshub/services/notifier"
	"koshub/session"
	"koshub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	redisClient := utils.GetRedisClient()

	// Typed clients for the two upstream services.
	accommodationClient := accommodation.NewClient(config.AppConfig.AccommodationAPI, config.UpstreamTimeout(), logger)
	livingSupportClient := livingsupport.NewClient(config.AppConfig.LivingSupportAPI, config.UpstreamTimeout(), logger)

	sessionStore := session.NewRedisStore(redisClient, config.SessionTTL())
	badge := notifier.New(livingSupportClient, redisClient, notifier.DefaultInterval, logger)

	handler := handlers.NewHandler(accommodationClient, livingSupportClient, sessionStore, badge)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware(sessionStore))
	router.SetFuncMap(handlers.TemplateFuncMap())
	router.LoadHTMLGlob("templates/*.html")

	routes.RegisterRoutes(router, handler)
	routes.RegisterHealthRoute(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	badge.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
