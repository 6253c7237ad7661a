// Package config reads the bot settings from the environment.
package config

import (
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain"
	"github.com/diegoclair/meal-schedule-bot/internal/keyring"
	"github.com/spf13/viper"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	RemoteStoreURL     string
	RemoteStoreToken   string
	RemoteStoreTimeout time.Duration

	GridConcurrency int
	CatalogTTL      time.Duration
	DefaultAgeGroup string

	Debug  bool
	LogDir string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("SLACK_BOT_TOKEN", "")
	v.SetDefault("SLACK_SIGNING_SECRET", "")
	v.SetDefault("DATABASE_PATH", "./meal-schedule.db")
	v.SetDefault("PORT", "3000")
	v.SetDefault("REMOTE_STORE_URL", "")
	v.SetDefault("REMOTE_STORE_TOKEN", "")
	v.SetDefault("REMOTE_STORE_TIMEOUT", 10*time.Second)
	v.SetDefault("GRID_CONCURRENCY", domain.DefaultGridConcurrency)
	v.SetDefault("CATALOG_TTL", 5*time.Minute)
	v.SetDefault("DEFAULT_AGE_GROUP", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_DIR", "")

	v.AutomaticEnv()
	return v
}

// Load builds the configuration from the environment. Secrets that are not
// set fall back to the OS keyring.
func Load() *Config {
	v := newViper()

	return &Config{
		SlackBotToken:      secret(v, "SLACK_BOT_TOKEN"),
		SlackSigningSecret: secret(v, "SLACK_SIGNING_SECRET"),
		DatabasePath:       v.GetString("DATABASE_PATH"),
		Port:               v.GetString("PORT"),
		RemoteStoreURL:     v.GetString("REMOTE_STORE_URL"),
		RemoteStoreToken:   secret(v, "REMOTE_STORE_TOKEN"),
		RemoteStoreTimeout: v.GetDuration("REMOTE_STORE_TIMEOUT"),
		GridConcurrency:    v.GetInt("GRID_CONCURRENCY"),
		CatalogTTL:         v.GetDuration("CATALOG_TTL"),
		DefaultAgeGroup:    v.GetString("DEFAULT_AGE_GROUP"),
		Debug:              v.GetBool("DEBUG"),
		LogDir:             v.GetString("LOG_DIR"),
	}
}

func secret(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	value, err := keyring.Get(key)
	if err != nil {
		return ""
	}
	return value
}
