//	@title			AI Image Processing API
//	@version		1.0
//	@description	Proxy for Doubao image generation, DeepSeek summarization and TOS uploads. API keys stay on the server.
//
//	@host		localhost:8080
//	@BasePath	/api/v1

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/novel2image/proxy/internal/config"
	"github.com/novel2image/proxy/internal/generation"
	"github.com/novel2image/proxy/internal/metrics"
	"github.com/novel2image/proxy/internal/server"
	"github.com/novel2image/proxy/internal/storage"
	"github.com/novel2image/proxy/internal/summarize"
	"github.com/novel2image/proxy/internal/upload"
	"github.com/novel2image/proxy/internal/upstream"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	collector := metrics.NewCollector()

	store, err := storage.NewTOSStorage(storage.TOSOptions{
		S3Endpoint:     cfg.TOSS3Endpoint,
		PublicEndpoint: cfg.TOSEndpoint,
		Region:         cfg.TOSRegion,
		AccessKey:      cfg.TOSAccessKey,
		SecretKey:      cfg.TOSSecretKey,
		Metrics:        collector,
	})
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}
	if err := cfg.StorageMissing(cfg.TOSBucketName); err != nil {
		log.Printf("uploads disabled until configured: %v", err)
	}

	// Wire dependencies: upstream client → service → handler
	doubao := upstream.New("doubao", cfg.DoubaoBaseURL, cfg.DoubaoAPIKey, generation.Timeout, collector)
	generationHandler := generation.NewHandler(generation.NewService(doubao, cfg.DoubaoModel))

	deepseek := upstream.New("deepseek", cfg.DeepSeekBaseURL, cfg.DeepSeekAPIKey, summarize.Timeout, collector)
	summarizeHandler := summarize.NewHandler(summarize.NewService(deepseek, cfg.DeepSeekModel))

	uploadHandler := upload.NewHandler(upload.NewService(store, cfg), cfg.MaxUploadSize)

	router := server.NewRouter(server.Deps{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Generation:     generationHandler,
		Summarize:      summarizeHandler,
		Upload:         uploadHandler,
		Metrics:        collector.Handler(),
	})

	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     router,
		ReadTimeout: 60 * time.Second,
		// Must outlast the slowest upstream (summarization, 120s).
		WriteTimeout: summarize.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on %s (env=%s)", cfg.Addr(), cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
