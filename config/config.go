package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Facility booking policy. The scheduling engine consumes these through
	// an explicit Policy struct built in main, never through this global.
	FacilityTimezone   string `mapstructure:"FACILITY_TIMEZONE"`
	BookingStartHour   int    `mapstructure:"BOOKING_START_HOUR"`
	BookingEndHour     int    `mapstructure:"BOOKING_END_HOUR"`
	SlotGranularityMin int    `mapstructure:"SLOT_GRANULARITY_MINUTES"`
	AllowedDurations   string `mapstructure:"ALLOWED_DURATIONS"`
	MaxMembers         int    `mapstructure:"MAX_MEMBERS"`
	DateLockTimeoutMS  int    `mapstructure:"DATE_LOCK_TIMEOUT_MS"`
	AvailabilityTTLSec int    `mapstructure:"AVAILABILITY_CACHE_TTL_SEC"`
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
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("FACILITY_TIMEZONE", "Europe/Berlin")
	viper.SetDefault("BOOKING_START_HOUR", 9)
	viper.SetDefault("BOOKING_END_HOUR", 24)
	viper.SetDefault("SLOT_GRANULARITY_MINUTES", 30)
	viper.SetDefault("ALLOWED_DURATIONS", "1,2,3,4")
	viper.SetDefault("MAX_MEMBERS", 6)
	viper.SetDefault("DATE_LOCK_TIMEOUT_MS", 2000)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SEC", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// AllowedDurationHours parses the comma-separated ALLOWED_DURATIONS value.
func (c Config) AllowedDurationHours() []int {
	parts := strings.Split(c.AllowedDurations, ",")
	durations := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d <= 0 {
			log.Fatalf("invalid ALLOWED_DURATIONS entry %q", p)
		}
		durations = append(durations, d)
	}
	return durations
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
