package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-catalog/pkg/container"
	"library-catalog/pkg/logger"
)

func main() {
	// .env is for development; production uses system environment variables.
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	env := getEnv("APP_ENV", "development")
	logger.Init(env, getEnv("LOG_LEVEL", "info"))

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}

func Serve() {
	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize container")
	}

	router := SetupRouter(appContainer)

	cfg := appContainer.Config
	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("environment", cfg.App.Environment).
			Msg("Server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	appContainer.Cleanup(shutdownCtx)

	log.Info().Msg("Server exited")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
