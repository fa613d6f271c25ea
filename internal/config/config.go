package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	HTTP         HTTPConfig         `yaml:"http"`
	Logger       LoggerConfig       `yaml:"logger"`
	Storage      StorageConfig      `yaml:"storage"`
	Mongo        MongoConfig        `yaml:"mongo"`
	Session      SessionConfig      `yaml:"session"`
	Redis        RedisConfig        `yaml:"redis"`
	Localization LocalizationConfig `yaml:"localization"`
	Metrics      MetricsConfig      `yaml:"metrics"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	User     string `yaml:"user" env:"MONGO_USER"`
	Password string `yaml:"password" env:"MONGO_PASSWORD"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"storefront"`
	Seed     bool   `yaml:"seed" env:"MONGO_SEED" env-default:"true"`
}

type SessionConfig struct {
	Store      string        `yaml:"store" env:"SESSION_STORE" env-default:"memory"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"storefront_session"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type LocalizationConfig struct {
	DefaultCulture string `yaml:"default_culture" env:"DEFAULT_CULTURE" env-default:"en"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"storefront"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads path when it exists and falls back to the environment
// alone when it does not.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			log.Printf("config file not found at %s, loading from environment only", path)
			cfg = Config{}
			if errEnv := cleanenv.ReadEnv(&cfg); errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
