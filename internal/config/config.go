package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr       string        `mapstructure:"HTTP_ADDR"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	OTLPEndpoint   string        `mapstructure:"OTLP_ENDPOINT"`
	IdempotencyTTL time.Duration `mapstructure:"IDEMPOTENCY_TTL"`

	RestaurantLat         float64 `mapstructure:"RESTAURANT_LAT"`
	RestaurantLng         float64 `mapstructure:"RESTAURANT_LNG"`
	RestaurantLive        bool    `mapstructure:"RESTAURANT_LIVE"`
	DeliveryRatePerKm     float64 `mapstructure:"DELIVERY_RATE_PER_KM"`
	FreeDeliveryThreshold float64 `mapstructure:"FREE_DELIVERY_THRESHOLD"`
}

// Load reads app.env from path when present, then lets environment
// variables override.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("OTLP_ENDPOINT", "http://localhost:4318")
	v.SetDefault("IDEMPOTENCY_TTL", 10*time.Minute)
	v.SetDefault("RESTAURANT_LAT", 28.6139)
	v.SetDefault("RESTAURANT_LNG", 77.2090)
	v.SetDefault("RESTAURANT_LIVE", true)
	v.SetDefault("DELIVERY_RATE_PER_KM", 40.0)
	v.SetDefault("FREE_DELIVERY_THRESHOLD", 500.0)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
