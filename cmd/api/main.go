package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api/handlers"
	"feedbackTracker/internal/api/server"
	"feedbackTracker/internal/config"
	"feedbackTracker/internal/logger"
	"feedbackTracker/internal/metrics"
	"feedbackTracker/internal/service"
	storageGorm "feedbackTracker/internal/storage/gorm"
	"feedbackTracker/internal/tracing"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}
	envConfig := config.NewEnvConfig()
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	// Пустой DSN оставляет клиент Sentry без транспорта
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         envConfig.Sentry.DSN,
		Environment: envConfig.Sentry.Environment,
	}); err != nil {
		log.Error().Err(err).Msg("failed to initialize sentry")
	}
	defer sentry.Flush(2 * time.Second)

	shutdownTracing := tracing.Setup()

	db, err := storageGorm.ConnectDB(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB from gorm")
	}
	defer sqlDB.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	txManager := storageGorm.NewTxManager(db)
	appService := service.New(txManager)

	if err := appService.SeedTeamMembers(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed team rosters")
	}
	if err := appService.EnsureDefaultAdmin(ctx, envConfig.DefaultAdmin.Username, envConfig.DefaultAdmin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to create default admin")
	}

	sessionStore := storageGorm.NewSessionStore(ctx, db, sessionSecret(envConfig),
		envConfig.Session.MaxAge, envConfig.ProductionType == "prod")

	go metrics.CollectDBStats(ctx, sqlDB, 15*time.Second)
	go txManager.RunMetricsReconciler(ctx, time.Minute)

	appHandler := handlers.NewHandler(appService, sessionStore, txManager, envConfig.AllowedOrigins)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s, starting graceful shutdown", s))

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(shutdownCtx)
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown tracer provider")
	}

	log.Info().Msg("service shutdown gracefully")
}

// sessionSecret возвращает ключ подписи cookie; без SESSION_SECRET генерируется
// случайный ключ и сессии не переживают перезапуск
func sessionSecret(envConfig *config.Config) []byte {
	if envConfig.Session.Secret != "" {
		return []byte(envConfig.Session.Secret)
	}

	log.Warn().Msg("SESSION_SECRET is not set, using a random key")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatal().Err(err).Msg("failed to generate session secret")
	}
	return key
}
