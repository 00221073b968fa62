package configs

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	maxRetries = 10
	retryDelay = 5 * time.Second
)

func (e ENV) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

// OpenConnection opens the MySQL database, retrying while it comes up.
func OpenConnection(env ENV) (*gorm.DB, error) {
	dsn := env.DSN()

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		zap.L().Info("Attempting to connect to database",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.String("host", env.DBHost),
			zap.String("database", env.DBName))

		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					zap.L().Info("Database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			zap.L().Warn("Failed to ping database", zap.Error(pingErr), zap.Duration("retry_in", retryDelay))
		} else {
			lastErr = err
			zap.L().Warn("Failed to open GORM connection", zap.Error(err), zap.Duration("retry_in", retryDelay))
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}
