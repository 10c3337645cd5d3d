package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration, loaded from the environment (and an
// optional .env file) with defaults for local development.
type Config struct {
	HTTPAddr        string
	BackendURL      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	Debug           bool

	CORS      CORSConfig
	RateLimit RateLimitConfig

	SessionCookie string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration via viper. Environment variables override the
// defaults; a missing .env file is fine.
func Load() Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("BACKEND_URL", "http://localhost:5000")
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 15)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("SESSION_COOKIE", "cart_session")

	return Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		BackendURL:      v.GetString("BACKEND_URL"),
		RequestTimeout:  time.Duration(v.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		Debug:           v.GetBool("APP_DEBUG"),
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		SessionCookie: v.GetString("SESSION_COOKIE"),
	}
}
