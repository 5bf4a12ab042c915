package main

import (
	"log"

	_ "devboard/docs"
	"devboard/internal/config"
	"devboard/internal/server"

	"go.uber.org/zap"
)

// @title           Devboard API
// @version         1.0
// @description     API for managing projects and their tasks.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	s, err := server.Init(cfg, logger)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
