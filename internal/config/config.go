package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port           string
	ProductionType string
	LogPath        string
	AllowedOrigins []string

	Log          Log
	Sentry       Sentry
	Database     Database
	Session      Session
	DefaultAdmin DefaultAdmin
}

// Log - ротация файла логов в prod окружении
type Log struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Sentry - отправка паник и непредвиденных ошибок; пустой DSN отключает отправку
type Sentry struct {
	DSN         string
	Environment string
}

type Database struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Session struct {
	Secret string
	MaxAge int
}

type DefaultAdmin struct {
	Username string
	Password string
}

func NewEnvConfig() *Config {
	return &Config{
		Port:           getEnv("APP_PORT", "8080"),
		ProductionType: getEnv("APP_PRODUCTION_TYPE", "debug"),
		LogPath:        getEnv("APP_LOG_PATH", "logs/app.log"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		Log: Log{
			MaxSizeMB:  getEnvInt("APP_LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("APP_LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("APP_LOG_MAX_AGE_DAYS", 30),
		},

		Sentry: Sentry{
			DSN:         os.Getenv("SENTRY_DSN"),
			Environment: getEnv("SENTRY_ENVIRONMENT", getEnv("APP_PRODUCTION_TYPE", "debug")),
		},

		Database: Database{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			Path:     getEnv("DB_PATH", "feedback.db"),
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		Session: Session{
			Secret: os.Getenv("SESSION_SECRET"),
			MaxAge: getEnvInt("SESSION_MAX_AGE", 8*60*60),
		},

		DefaultAdmin: DefaultAdmin{
			Username: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
			Password: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		},
	}
}

// PostgresDSN собирает строку подключения для gorm postgres драйвера
func (d Database) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// PostgresURL собирает URL для golang-migrate
func (d Database) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")

	fmt.Println("\nApp Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)
	fmt.Printf("\tAllowedOrigins: %s\n", strings.Join(config.AllowedOrigins, ","))
	fmt.Printf("\tLogRotation: %dMB x %d, %d days\n", config.Log.MaxSizeMB, config.Log.MaxBackups, config.Log.MaxAgeDays)
	fmt.Printf("\tSentryDSN: %s\n", mask(config.Sentry.DSN))

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tDriver: %s\n", config.Database.Driver)
	if config.Database.Driver == DriverPostgres {
		fmt.Printf("\tHost: %s\n", config.Database.Host)
		fmt.Printf("\tPort: %s\n", config.Database.Port)
		fmt.Printf("\tUser: %s\n", config.Database.User)
		fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
		fmt.Printf("\tName: %s\n", config.Database.Name)
		fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)
	} else {
		fmt.Printf("\tPath: %s\n", config.Database.Path)
	}

	fmt.Println("\nSession Configuration:")
	fmt.Printf("\tSecret: %s\n", mask(config.Session.Secret))
	fmt.Printf("\tMaxAge: %d\n", config.Session.MaxAge)

	fmt.Println("\nDefault Admin:")
	fmt.Printf("\tUsername: %s\n", config.DefaultAdmin.Username)
	fmt.Printf("\tPassword: %s\n", mask(config.DefaultAdmin.Password))

	fmt.Println("\n===================================")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
