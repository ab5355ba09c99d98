package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DATABASE_URL", "MONGO_URI", "MONGO_DATABASE",
		"JWT_SECRET", "SECRET_KEY", "ALLOWED_ORIGINS", "CLIENT_URL",
		"STRICT_BEARER_SCHEME", "ENFORCE_TASK_PROJECT_OWNERSHIP",
		"LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/taskboard")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.False(t, cfg.Auth.StrictBearerScheme)
	assert.False(t, cfg.Auth.EnforceTaskProjectOwnership)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
}

func TestFromEnv_SecretKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SECRET_KEY", "legacy")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.JWT.Secret)
	assert.Equal(t, "taskboard.db", cfg.DB.DSN)
}

func TestFromEnv_MissingSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnv_PostgresRequiresDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnv_Mongo(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "MONGO")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_DATABASE", "tareas")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.DB.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DB.MongoURI)
	assert.Equal(t, "tareas", cfg.DB.MongoDatabase)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("CLIENT_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")
	t.Setenv("STRICT_BEARER_SCHEME", "true")
	t.Setenv("ENFORCE_TASK_PROJECT_OWNERSHIP", "1")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file::memory:", cfg.DB.DSN)
	assert.True(t, cfg.Auth.StrictBearerScheme)
	assert.True(t, cfg.Auth.EnforceTaskProjectOwnership)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://app.example.com",
		"https://a.example.com",
		"https://b.example.com",
	}, cfg.Server.AllowedOrigins)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bool", "STRICT_BEARER_SCHEME", "maybe"},
		{"duration", "SHUTDOWN_TIMEOUT", "soon"},
		{"driver", "DB_DRIVER", "oracle"},
		{"log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_DRIVER", "sqlite")
			t.Setenv("JWT_SECRET", "s3cret")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
		})
	}
}
