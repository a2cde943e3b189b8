package database

import (
	"Scoops/config"
	"Scoops/models"
	"Scoops/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the configured relational store and applies the pool settings.
func NewDB(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Database.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Database.Dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(conf.Database.Dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Database.Driver)
	}

	logLevel := logger.Warn
	if conf.Debug() {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.Database.MaxIdleConns)
	}
	if conf.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.Database.MaxOpenConns)
	}
	if conf.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.Database.ConnMaxLifetime)
	}

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

// Migrate creates or alters every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.L.Info("database migrated")
	return nil
}
