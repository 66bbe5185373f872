// Package config resuelve la configuración del proceso desde el entorno (y un .env opcional).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pet-store-inventory/internal/adapters/taxonomy/ninjas"
	"pet-store-inventory/internal/platform/ids"
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string
	AppName   string

	NinjaAPIKey      string
	NinjaBaseURL     string
	TaxonomyTimeout  time.Duration
	TaxonomyCacheTTL time.Duration

	PictureFetchTimeout time.Duration

	IDStrategy      string
	ShutdownTimeout time.Duration
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "pet-store-inventory")
	v.SetDefault("NINJA_API_KEY", "")
	v.SetDefault("NINJA_BASE_URL", ninjas.DefaultBaseURL)
	v.SetDefault("TAXONOMY_TIMEOUT", "10s")
	v.SetDefault("TAXONOMY_CACHE_TTL", "1h")
	v.SetDefault("PICTURE_FETCH_TIMEOUT", "10s")
	v.SetDefault("ID_STRATEGY", ids.StrategySequential)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

// Load lee el entorno. envFiles son .env opcionales: si no existen se ignoran,
// y nunca pisan variables ya definidas en el entorno.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	cfg := &Config{
		Port:         strings.TrimSpace(v.GetString("PORT")),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		AppName:      v.GetString("APP_NAME"),
		NinjaAPIKey:  strings.TrimSpace(v.GetString("NINJA_API_KEY")),
		NinjaBaseURL: strings.TrimSpace(v.GetString("NINJA_BASE_URL")),
		IDStrategy:   strings.ToLower(strings.TrimSpace(v.GetString("ID_STRATEGY"))),
	}

	var errs []error
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TAXONOMY_TIMEOUT", &cfg.TaxonomyTimeout},
		{"TAXONOMY_CACHE_TTL", &cfg.TaxonomyCacheTTL},
		{"PICTURE_FETCH_TIMEOUT", &cfg.PictureFetchTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(strings.TrimSpace(v.GetString(d.key)))
		if err != nil || parsed < 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", d.key, v.GetString(d.key)))
			continue
		}
		*d.dst = parsed
	}

	if cfg.Port == "" {
		errs = append(errs, errors.New("PORT: required"))
	}
	if _, err := ids.New(cfg.IDStrategy); err != nil {
		errs = append(errs, fmt.Errorf("ID_STRATEGY: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}
