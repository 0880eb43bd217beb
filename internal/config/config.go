package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	MongoTimeout time.Duration
	RateLimit    RateLimitConfig
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// LoadConfig reads configuration from environment variables and an optional
// .env file. DATABASE_URL may be empty; the server then starts without a
// store and data endpoints report it as unavailable.
func LoadConfig() Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_NAME", "studyhub")
	viper.SetDefault("MONGO_TIMEOUT", 10)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	return Config{
		Port:         viper.GetString("PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		DatabaseName: viper.GetString("DATABASE_NAME"),
		MongoTimeout: time.Duration(viper.GetInt("MONGO_TIMEOUT")) * time.Second,
		RateLimit: RateLimitConfig{
			Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   viper.GetInt("RATE_LIMIT_BURST"),
		},
	}
}
