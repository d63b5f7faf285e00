package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api/handlers"
	"feedbackTracker/internal/config"
)

type Server struct {
	envConfig *config.Config
	handler   *handlers.Handler
	server    *http.Server
}

func NewServer(envConfig *config.Config, handler *handlers.Handler) *Server {
	if envConfig.ProductionType != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		envConfig: envConfig,
		handler:   handler,
		server: &http.Server{
			Handler:           handler.InitRoutes(),
			Addr:              ":" + envConfig.Port,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Run() {
	log.Info().Str("addr", s.server.Addr).Msg("starting HTTP server")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to start HTTP server")
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
		return
	}
	log.Info().Msg("Server shutdown gracefully")
}
