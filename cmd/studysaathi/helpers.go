package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studysaathi/studysaathi/internal/config"
	"github.com/studysaathi/studysaathi/internal/database"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openDatabase loads the configuration and connects to its database.
func openDatabase() (*config.Config, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return cfg, db, nil
}

func loadLocation(cfg *config.Config) (*time.Location, error) {
	location, err := time.LoadLocation(cfg.Streak.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%s) > %w", cfg.Streak.Timezone, err)
	}
	return location, nil
}
