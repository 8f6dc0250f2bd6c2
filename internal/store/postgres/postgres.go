package postgres

import (
	"fmt"
	"io"
	slog "log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/odpf/digits/config"
)

const slowQueryThreshold = 200 * time.Millisecond

// Connect connects to the DB with custom configuration, queries are logged to writer
func Connect(conf config.DBConfig, writer io.Writer) (*gorm.DB, error) {
	dbLogger := logger.New(
		slog.New(writer, "\r\n", slog.LstdFlags),
		logger.Config{
			SlowThreshold: slowQueryThreshold,
			LogLevel:      logger.Warn,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(postgres.Open(conf.DSN), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unable to get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(conf.MaxIdleConnection)
	sqlDB.SetMaxOpenConns(conf.MaxOpenConnection)
	return db, nil
}
