package database

import (
	"fmt"
	stdlog "log"
	"strings"
	"time"

	"college-portal/config"
	"college-portal/internal/apperrors"
	"college-portal/internal/course"
	"college-portal/internal/logger"
	"college-portal/internal/student"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured store and applies the pool settings.
// It does not touch the schema; call Initialize for that.
func Open(cfg config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	logger.Info().Str("driver", cfg.DBDriver).Msg("Connected to database")
	return db, nil
}

func dialectorFor(cfg config.Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.DBDriver) {
	case "", "postgres", "postgresql":
		return postgres.Open(cfg.PostgresDSN()), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(cfg.DBPath)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// SQLiteDSN enables foreign keys so ON DELETE SET NULL is enforced.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// Initialize creates or migrates the courses and students tables together
// with the students.course_id foreign key.
func Initialize(db *gorm.DB) error {
	logger.Info().Msg("Running migrations")

	if err := db.AutoMigrate(&course.Course{}, &student.Student{}); err != nil {
		logger.Error().Err(err).Str("op", "Initialize").Msg("Migration failed")
		return apperrors.StoreError("Initialize", "unable to sync the database", err)
	}

	logger.Info().Msg("Migrations completed")
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newGormLogger(level string) gormlogger.Interface {
	logLevel := gormlogger.Warn
	switch strings.ToLower(level) {
	case "debug", "trace":
		logLevel = gormlogger.Info
	case "error", "fatal", "panic":
		logLevel = gormlogger.Error
	case "disabled":
		logLevel = gormlogger.Silent
	}

	return gormlogger.New(stdlog.New(logger.Get(), "", 0), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
	})
}
