package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	SwaggerDir     string   `yaml:"swagger_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	Name          string `yaml:"name"`
	SSLMode       string `yaml:"ssl_mode"`
	MigrationsDir string `yaml:"migrations_dir"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// URL is the connection string in URL form, as golang-migrate expects it.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	Issuer          string `yaml:"issuer"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

type BookingConfig struct {
	OffersCacheTTL int `yaml:"offers_cache_ttl_seconds"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadEnvFiles populates the process environment from .env files when present.
// A missing file is not an error.
func LoadEnvFiles(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MigrationsDir == "" {
		c.Database.MigrationsDir = "migrations"
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "goglobe"
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.Booking.OffersCacheTTL <= 0 {
		c.Booking.OffersCacheTTL = 60
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
