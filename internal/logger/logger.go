package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/lumberjack.v2"

	"feedbackTracker/internal/api/middleware"
	"feedbackTracker/internal/config"
)

// Setup настраивает глобальный логгер zerolog по типу окружения:
// debug - stdout и уровень debug, prod - файл APP_LOG_PATH с ротацией, test - логи отключены.
func Setup(envConf *config.Config) *zerolog.Logger {
	switch envConf.ProductionType {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "test":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"

	// Оставляем только пакет и файл, полный путь в логах не нужен
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	var writer io.Writer = os.Stdout
	if envConf.ProductionType == "prod" {
		writer = openLogFile(envConf.LogPath, envConf.Log)
	}

	l := zerolog.New(writer).
		With().
		Caller().
		Timestamp().
		Logger()

	log.Logger = l

	log.Info().Str("production_type", envConf.ProductionType).Msg("logger setup complete")
	return &l
}

func openLogFile(path string, rotation config.Log) io.Writer {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatal().Err(err).Msg("failed to create logger directory")
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		LocalTime:  true,
	}
}

// GetRequestID достаёт request id, положенный в контекст LoggerMiddleware
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}
