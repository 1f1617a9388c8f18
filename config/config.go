package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database named by DB_DRIVER/DB_DSN. MySQL in production;
// anything else falls back to a local sqlite file for development.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if getEnv("DB_DRIVER", "sqlite") == "mysql" {
		dsn := getEnv("DB_DSN", "root:root@tcp(127.0.0.1:3306)/gs_menu?charset=utf8mb4&parseTime=True&loc=Local")
		return gorm.Open(mysql.Open(dsn), cfg)
	}

	return gorm.Open(sqlite.Open(getEnv("DB_DSN", "gs_menu.db")), cfg)
}
