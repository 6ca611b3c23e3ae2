package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

func Parse() (Config, error) {
	godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	switch cfg.Storage.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}
