package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream service base URLs.
	AccommodationAPI       string `mapstructure:"ACCOMMODATION_API"`
	LivingSupportAPI       string `mapstructure:"LIVING_SUPPORT_API"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Redis configuration (session store and unread-count cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ACCOMMODATION_API", "http://localhost:3000")
	viper.SetDefault("LIVING_SUPPORT_API", "http://localhost:3010")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MINUTES", 720)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SessionTTL returns the configured server-side session lifetime.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}

// UpstreamTimeout returns the HTTP client timeout for upstream calls.
func UpstreamTimeout() time.Duration {
	return time.Duration(AppConfig.UpstreamTimeoutSeconds) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
