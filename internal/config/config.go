package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/geoquiz.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// OptionCount is the identify-mode choice count per question.
	OptionCount int `env:"OPTION_COUNT" envDefault:"4"`
	// AdvanceDelay is how long correct/incorrect feedback stays on screen
	// before the next question appears.
	AdvanceDelay time.Duration `env:"ADVANCE_DELAY" envDefault:"1500ms"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
