package configs

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func OpenConnection(env ENV, log *zap.Logger) (*gorm.DB, error) {

	maxRetries := 10
	retryDelay := 5 * time.Second

	gormLogLevel := logger.Warn
	if !env.IsProduction() {
		gormLogLevel = logger.Info
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		log.Info("Attempting to connect to database",
			zap.String("database", env.DBName),
			zap.String("host", env.DBHost),
			zap.String("port", env.DBPort),
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
		)
		db, err := gorm.Open(mysql.Open(env.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(gormLogLevel),
		})
		if err == nil {

			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					log.Info("✅ Database connection successful!")
					return db, nil
				}
			}

			lastErr = pingErr
			log.Warn("❌ Failed to ping database, retrying", zap.Error(pingErr), zap.Duration("retry_in", retryDelay))
		} else {
			lastErr = err
			log.Warn("❌ Failed to open GORM connection, retrying", zap.Error(err), zap.Duration("retry_in", retryDelay))
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}
