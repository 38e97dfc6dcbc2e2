package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	RunAddr, DataBaseURL, JWTSecret, LogLevel = "localhost:8080", "", "", "info"
	MaxBatchSize, MaxBodyBytes, Workers = 10000, 1<<20, 0

	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("DATABASE_URI", "postgres://localhost/chi")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_BATCH_SIZE", "50")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("WORKERS", "4")

	LoadEnv()

	assert.Equal(t, ":9090", RunAddr)
	assert.Equal(t, "postgres://localhost/chi", DataBaseURL)
	assert.Equal(t, "secret", JWTSecret)
	assert.Equal(t, "debug", LogLevel)
	assert.Equal(t, 50, MaxBatchSize)
	assert.EqualValues(t, 2048, MaxBodyBytes)
	assert.Equal(t, 4, Workers)
}

func TestLoadEnvIgnoresBadNumbers(t *testing.T) {
	MaxBatchSize, Workers = 10000, 2

	t.Setenv("MAX_BATCH_SIZE", "lots")
	t.Setenv("WORKERS", "-1")

	LoadEnv()

	assert.Equal(t, 10000, MaxBatchSize)
	assert.Equal(t, 2, Workers)
}
