package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Set properties of the predefined Logger: tag every line with the
	// service name, keep timestamps for correlating with AI request logs.
	log.SetPrefix("fitplan/go-api: ")
	log.SetFlags(log.LstdFlags)

	// .env is optional — deployed environments inject variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("[main] config: %v", err)
	}

	if cfg.Monitoring.PrometheusEnabled {
		registerTelemetry()
	}

	h := Handler{aiConfig: cfg.AI, monitoring: cfg.Monitoring}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	log.Printf("[main] listening on %s (model %s)", cfg.Server.Addr, cfg.AI.Model)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("[main] server: %v", err)
	}
}
