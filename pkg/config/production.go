package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func loadProductionConfig(cfg *Config) error {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.DatabaseFilePath = os.Getenv("DATABASE_FILE_PATH")
	if cfg.DatabaseFilePath == "" {
		cfg.DatabaseFilePath = "/data/data.sqlite"
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}

	return nil
}
