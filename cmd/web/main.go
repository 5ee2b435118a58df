package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appdeepfake "github.com/verascan/verascan/internal/application/deepfake"
	appplag "github.com/verascan/verascan/internal/application/plagiarism"
	"github.com/verascan/verascan/internal/config"
	"github.com/verascan/verascan/internal/infra/analysis"
	"github.com/verascan/verascan/internal/infra/httpserver"
	"github.com/verascan/verascan/internal/middleware"
)

func main() {
	// optional .env for local runs
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// one client for both analysis flows
	client := analysis.New(cfg.Analysis.BaseURL, cfg.AnalysisTimeout())

	detector := &appdeepfake.Service{Analyzer: client}
	checker := &appplag.Service{Checker: client}

	handler := httpserver.NewRouter(detector, checker, httpserver.Options{
		MaxUploadBytes: cfg.Upload.MaxBytes,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateCapacity:   cfg.RateLimit.Capacity,
		RateRefill:     cfg.RateLimit.RefillRate,
		Health: map[string]middleware.HealthChecker{
			"analysis": &middleware.UpstreamHealthChecker{URL: cfg.Analysis.BaseURL + "/health"},
		},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AnalysisTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s (analysis backend %s)", addr, cfg.Analysis.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
