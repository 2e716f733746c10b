package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl file or directory

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Hold keeps the scope open after runners finish until the context is
	// cancelled.
	Hold bool
	// DryRun prints the resolved order without constructing anything.
	DryRun bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d is out of range", cfg.HealthcheckPort)
	}

	return &cfg, nil
}
