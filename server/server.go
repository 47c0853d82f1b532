package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tariffserver/enrichment"
	"tariffserver/internal/api/handlers/tariff"
	"tariffserver/internal/api/routes"
	"tariffserver/internal/config"
)

// Server HTTP сервер тарифного сервиса
type Server struct {
	config     *config.Config
	enricher   *enrichment.TnvedEnricher
	cache      *enrichment.TariffCache
	httpServer *http.Server
}

// New создает сервер из конфигурации
func New(cfg *config.Config) *Server {
	var cache *enrichment.TariffCache
	if cfg.CacheEnabled {
		cache = enrichment.NewTariffCache(&enrichment.CacheConfig{
			Enabled:         true,
			TTL:             cfg.CacheTTL,
			CleanupInterval: cfg.CacheCleanupInterval,
		})
	}

	enricher := enrichment.NewTnvedEnricher(enrichment.EnricherConfig{
		BaseURL:   cfg.IfcgBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
		RateLimit: rate.Limit(cfg.RateLimitRPS),
	}, cache)

	return &Server{
		config:   cfg,
		enricher: enricher,
		cache:    cache,
	}
}

// Start запускает HTTP сервер. Блокирует до остановки.
func (s *Server) Start() error {
	// Режим Gin: release по умолчанию, переопределяется через GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	tariffHandler := tariff.NewHandler(s.enricher)
	router := routes.NewRouter(tariffHandler)

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Сервер запускается на порту %s", s.config.Port)
	log.Printf("API доступно по адресу: http://localhost%s", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("не удалось запустить HTTP сервер на %s: %w", addr, err)
	}

	return nil
}

// Shutdown корректно останавливает сервер и фоновые задачи кэша
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cache != nil {
		s.cache.Stop()
	}

	if s.httpServer == nil {
		return nil
	}

	log.Printf("Остановка сервера...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}
	log.Printf("Сервер остановлен")

	return nil
}
