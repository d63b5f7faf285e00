package gorm

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"feedbackTracker/internal/config"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// sqliteBusyTimeout - сколько ждать снятия блокировки записи другим соединением
const sqliteBusyTimeout = 5000

// ConnectDB открывает базу по конфигурации и применяет миграции.
// По умолчанию используется встроенная sqlite, postgres - опционально.
func ConnectDB(envConf *config.Config) (*gorm.DB, error) {
	logLevel := logger.Info
	switch envConf.ProductionType {
	case "prod":
		logLevel = logger.Error
	case "test":
		logLevel = logger.Silent
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch envConf.Database.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(fmt.Sprintf("%s?_busy_timeout=%d", envConf.Database.Path, sqliteBusyTimeout))
	case config.DriverPostgres:
		dialector = postgres.Open(envConf.Database.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", envConf.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if envConf.Database.Driver == config.DriverSQLite {
		// sqlite допускает одного писателя, остальные ждут в пуле
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	log.Info().Str("driver", envConf.Database.Driver).Msg("connected to the database successfully")

	if err := RunMigrations(&envConf.Database); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("migrations applied successfully")

	return db, nil
}

// RunMigrations применяет встроенные миграции. Схема создаётся через
// CREATE TABLE IF NOT EXISTS, поэтому существующая база без таблицы версий тоже подходит.
func RunMigrations(dbConf *config.Database) error {
	var dir, url string
	switch dbConf.Driver {
	case config.DriverSQLite:
		dir, url = "migrations/sqlite", "sqlite3://"+dbConf.Path
	case config.DriverPostgres:
		dir, url = "migrations/postgres", dbConf.PostgresURL()
	default:
		return fmt.Errorf("unsupported database driver %q", dbConf.Driver)
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migration source error: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return fmt.Errorf("migration init error: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up error: %w", err)
	}

	return nil
}
