package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"

	defaultPort                 = "3000"
	defaultStaticDir            = "public"
	defaultStorePath            = "data/store.json"
	defaultNavigationDelay      = 2 * time.Second
	defaultNotificationDuration = 2 * time.Second
)

var (
	ErrUnknownStoreDriver   = errors.New("unknown store driver")
	ErrUnknownCatalogSource = errors.New("unknown catalog source")
	ErrMissingRedisAddr     = errors.New("REDIS_ADDR is required for the redis store")
	ErrMissingDBHost        = errors.New("DB_HOST is required for postgres")
	ErrMissingVisitorSecret = errors.New("VISITOR_SECRET is required in production")
)

type Config struct {
	AppPort   string
	AppEnv    string
	StaticDir string

	StoreDriver   string
	StorePath     string
	RedisAddr     string
	CatalogSource string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	VisitorSecret string

	NavigationDelay      time.Duration
	NotificationDuration time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:              getEnv("APP_PORT", defaultPort),
		AppEnv:               os.Getenv("APP_ENV"),
		StaticDir:            getEnv("STATIC_DIR", defaultStaticDir),
		StoreDriver:          getEnv("STORE_DRIVER", DriverFile),
		StorePath:            getEnv("STORE_PATH", defaultStorePath),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		CatalogSource:        getEnv("CATALOG_SOURCE", DriverMemory),
		DBHost:               os.Getenv("DB_HOST"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBPort:               os.Getenv("DB_PORT"),
		VisitorSecret:        os.Getenv("VISITOR_SECRET"),
		NavigationDelay:      getDuration("NAVIGATION_DELAY", defaultNavigationDelay),
		NotificationDuration: getDuration("NOTIFICATION_DURATION", defaultNotificationDuration),
	}

	return cfg
}

// Validate reports settings the selected drivers cannot run without.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverFile:
	case DriverRedis:
		if c.RedisAddr == "" {
			return ErrMissingRedisAddr
		}
	case DriverPostgres:
		if c.DBHost == "" {
			return ErrMissingDBHost
		}
	default:
		return ErrUnknownStoreDriver
	}

	switch c.CatalogSource {
	case DriverMemory:
	case DriverPostgres:
		if c.DBHost == "" {
			return ErrMissingDBHost
		}
	default:
		return ErrUnknownCatalogSource
	}

	if c.AppEnv == "production" && c.VisitorSecret == "" {
		return ErrMissingVisitorSecret
	}

	return nil
}

// NeedsPostgres is true when any component is backed by the database.
func (c *Config) NeedsPostgres() bool {
	return c.StoreDriver == DriverPostgres || c.CatalogSource == DriverPostgres
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
