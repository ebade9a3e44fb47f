package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBDriver      string // "postgres" or "sqlite"
	DBDSN         string
	ServerPort    string
	SessionSecret string
	UploadDir     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.DBDSN == "" {
		logrus.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET is not set")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "web/static/uploads"
	}

	return cfg
}
