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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"genome-analysis-service/internal/adapters/primary/http/handlers"
	"genome-analysis-service/internal/adapters/primary/http/middleware"
	"genome-analysis-service/internal/adapters/secondary/callback"
	"genome-analysis-service/internal/adapters/secondary/clinvar"
	"genome-analysis-service/internal/adapters/secondary/fetch"
	"genome-analysis-service/internal/adapters/secondary/memstore"
	"genome-analysis-service/internal/config"
	"genome-analysis-service/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ClinVar data is optional: a missing or unreadable file degrades
	// annotation instead of blocking startup.
	clinvarRepo, err := clinvar.NewRepository(cfg.Dataset.ClinVarPath)
	if err != nil {
		log.Warnf("ClinVar data not loaded (continuing without ClinVar annotation): %v", err)
	} else {
		log.Infof("loaded %d ClinVar records from %s", clinvarRepo.Count(), cfg.Dataset.ClinVarPath)
	}

	// Secondary Adapters
	jobStore := memstore.NewJobStore()
	fetchClient := fetch.NewClient(cfg.Analysis.DownloadTimeout)
	callbackClient := callback.NewClient(cfg.Auth.APIKey, cfg.Analysis.CallbackTimeout)

	// Core Services
	riskAnalyzer := services.NewRiskAnalyzer(clinvarRepo)
	analysisSvc := services.NewAnalysisService(riskAnalyzer, jobStore, fetchClient, callbackClient, cfg.Analysis.Workers, cfg.Analysis.QueueSize)
	annotationSvc := services.NewAnnotationService(clinvarRepo)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	analysisSvc.Start(workerCtx)
	log.Infof("analysis worker pool started (%d workers)", cfg.Analysis.Workers)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(analysisSvc, annotationSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())

	h.RegisterRoutes(
		&router.RouterGroup,
		middleware.APIKeyAuth(cfg.Auth.APIKey),
		middleware.RateLimit(cfg.Analysis.RateLimitRPS, cfg.Analysis.RateLimitBurst),
	)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	stopWorkers()
	if err := analysisSvc.Wait(); err != nil && err != context.Canceled {
		log.Warnf("worker pool shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
