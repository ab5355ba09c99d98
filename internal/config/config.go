package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/taskboard-dev/taskboard/internal/types"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type DBConfig struct {
	Driver        string
	DSN           string
	MongoURI      string
	MongoDatabase string
}

type Config struct {
	Server struct {
		Port            string
		AllowedOrigins  []string
		ShutdownTimeout time.Duration
	}
	DB  DBConfig
	JWT struct {
		Secret string
	}
	Auth struct {
		// StrictBearerScheme rejects Authorization headers whose scheme word is not "Bearer".
		StrictBearerScheme bool
		// EnforceTaskProjectOwnership makes task creation check the project's owner.
		EnforceTaskProjectOwnership bool
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	var err error

	cfg := Config{}

	cfg.Server.Port = getEnv("PORT", "3000")
	cfg.Server.AllowedOrigins = allowedOrigins()

	if cfg.Server.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}

	cfg.DB.Driver = strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	cfg.DB.DSN = os.Getenv("DATABASE_URL")
	cfg.DB.MongoURI = os.Getenv("MONGO_URI")
	cfg.DB.MongoDatabase = getEnv("MONGO_DATABASE", "taskboard")

	switch cfg.DB.Driver {
	case DriverPostgres:
		if cfg.DB.DSN == "" {
			return Config{}, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
	case DriverSQLite:
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "taskboard.db"
		}
	case DriverMongo:
		if cfg.DB.MongoURI == "" {
			cfg.DB.MongoURI = "mongodb://localhost:27017"
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = os.Getenv("SECRET_KEY")
	}
	if cfg.JWT.Secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if cfg.Auth.StrictBearerScheme, err = getEnvBool("STRICT_BEARER_SCHEME", false); err != nil {
		return Config{}, err
	}
	if cfg.Auth.EnforceTaskProjectOwnership, err = getEnvBool("ENFORCE_TASK_PROJECT_OWNERSHIP", false); err != nil {
		return Config{}, err
	}

	cfg.Log.Level = strings.ToLower(getEnv("LOG_LEVEL", "info"))
	cfg.Log.Format = strings.ToLower(getEnv("LOG_FORMAT", "console"))

	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return Config{}, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.Log.Format)
	}

	return cfg, nil
}

func allowedOrigins() []string {
	origins := make([]string, len(types.DefaultAllowedOrigins))
	copy(origins, types.DefaultAllowedOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
