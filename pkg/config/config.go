package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DrawSourceStatic   = "static"
	DrawSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	DrawSource  string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// EngineConfig overrides the scoring heuristics. Zero values keep the built-in
// defaults; Epsilon is nil unless LOTTO_EPSILON is set.
type EngineConfig struct {
	BaselineAll           float64
	BaselineYear          float64
	BaselineRecentFactor  float64
	SpecialBaselineAll    float64
	SpecialBaselineNarrow float64
	SpreadAll             float64
	SpreadNarrow          float64
	Epsilon               *float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Lotto Insight API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			DrawSource:  getEnv("DRAW_SOURCE", DrawSourceStatic),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "lotto_insight"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	engineVars := []struct {
		key string
		dst *float64
	}{
		{"LOTTO_BASELINE_ALL", &cfg.Engine.BaselineAll},
		{"LOTTO_BASELINE_YEAR", &cfg.Engine.BaselineYear},
		{"LOTTO_BASELINE_RECENT_FACTOR", &cfg.Engine.BaselineRecentFactor},
		{"LOTTO_SPECIAL_BASELINE_ALL", &cfg.Engine.SpecialBaselineAll},
		{"LOTTO_SPECIAL_BASELINE_NARROW", &cfg.Engine.SpecialBaselineNarrow},
		{"LOTTO_SPREAD_ALL", &cfg.Engine.SpreadAll},
		{"LOTTO_SPREAD_NARROW", &cfg.Engine.SpreadNarrow},
	}
	for _, v := range engineVars {
		f, err := getEnvFloat(v.key)
		if err != nil {
			return nil, err
		}
		*v.dst = f
	}

	if os.Getenv("LOTTO_EPSILON") != "" {
		eps, err := getEnvFloat("LOTTO_EPSILON")
		if err != nil {
			return nil, err
		}
		if eps > 1 {
			return nil, errors.New("LOTTO_EPSILON must be within [0, 1]")
		}
		cfg.Engine.Epsilon = &eps
	}

	switch cfg.App.DrawSource {
	case DrawSourceStatic:
	case DrawSourcePostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown draw source %q", cfg.App.DrawSource)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

// getEnvFloat returns 0 when key is unset.
func getEnvFloat(key string) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return f, nil
}
