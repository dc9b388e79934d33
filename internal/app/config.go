package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PipelinePath string // hcl files describing modules and connections

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
