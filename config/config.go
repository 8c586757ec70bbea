package config

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/spf13/viper"
)

// MatchWeights holds the weighted-scoring coefficients used by the matcher.
// The four weights must sum to 1.
type MatchWeights struct {
	Rating      float64 `mapstructure:"MATCH_WEIGHT_RATING"`
	Reliability float64 `mapstructure:"MATCH_WEIGHT_RELIABILITY"`
	Completion  float64 `mapstructure:"MATCH_WEIGHT_COMPLETION"`
	Proximity   float64 `mapstructure:"MATCH_WEIGHT_PROXIMITY"`
}

// Sum returns the total of all four weights.
func (w MatchWeights) Sum() float64 {
	return w.Rating + w.Reliability + w.Completion + w.Proximity
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Matching configuration.
	Weights               MatchWeights `mapstructure:",squash"`
	DefaultCompletionRate float64      `mapstructure:"MATCH_DEFAULT_COMPLETION_RATE"`

	// Booking configuration.
	PendingTimeoutMins int `mapstructure:"BOOKING_PENDING_TIMEOUT_MINS"`
	SessionTTLMins     int `mapstructure:"BOOKING_SESSION_TTL_MINS"`

	// Payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Firebase service account for push notifications; empty disables FCM.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "taskhive")
	viper.SetDefault("MATCH_WEIGHT_RATING", 0.35)
	viper.SetDefault("MATCH_WEIGHT_RELIABILITY", 0.25)
	viper.SetDefault("MATCH_WEIGHT_COMPLETION", 0.25)
	viper.SetDefault("MATCH_WEIGHT_PROXIMITY", 0.15)
	viper.SetDefault("MATCH_DEFAULT_COMPLETION_RATE", 0.8)
	viper.SetDefault("BOOKING_PENDING_TIMEOUT_MINS", 30)
	viper.SetDefault("BOOKING_SESSION_TTL_MINS", 10)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := validate(AppConfig); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

func validate(cfg Config) error {
	if math.Abs(cfg.Weights.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("match weights must sum to 1, got %v", cfg.Weights.Sum())
	}
	if cfg.DefaultCompletionRate < 0 || cfg.DefaultCompletionRate > 1 {
		return fmt.Errorf("default completion rate must be in [0,1], got %v", cfg.DefaultCompletionRate)
	}
	if cfg.PendingTimeoutMins <= 0 {
		return fmt.Errorf("pending timeout must be positive, got %d", cfg.PendingTimeoutMins)
	}
	return nil
}

// PendingTimeout returns how long a booking may sit in pending before it is
// auto-declined.
func PendingTimeout() time.Duration {
	return time.Duration(AppConfig.PendingTimeoutMins) * time.Minute
}

// SessionTTL returns the booking session cache expiry.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMins) * time.Minute
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
