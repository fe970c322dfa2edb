package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	_ "nirman/docs"
	"nirman/internal/adapter/http/routes"
	"nirman/internal/config"
	"nirman/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Nirman Work Progress API
// @version         1.0
// @description     Public-works proposal lifecycle and financial progress ledger backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	configPath := flag.String("config", envOr("NIRMAN_CONFIG", "config.yaml"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Init(logger.Config{})
		logger.L().Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "[main] starting", zap.String("deployment", cfg.Deployment.Name), zap.Int("port", cfg.Server.Port))
	if err := routes.Run(ctx, cfg); err != nil {
		logger.Error(ctx, "[main] server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
