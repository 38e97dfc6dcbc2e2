package config

import (
	"flag"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

var (
	RunAddr      string
	DataBaseURL  string
	JWTSecret    string
	LogLevel     string
	MaxBatchSize int
	MaxBodyBytes int64
	Workers      int
)

func ParseFlags() {
	_ = godotenv.Load()

	flag.StringVar(&RunAddr, "a", "localhost:8080", "address and port to run server")
	flag.StringVar(&DataBaseURL, "d", "", "postgres connection url, in-memory storage when empty")
	flag.StringVar(&JWTSecret, "s", "", "secret for bearer tokens, auth disabled when empty")
	flag.StringVar(&LogLevel, "l", "info", "log level")
	flag.IntVar(&MaxBatchSize, "b", 10000, "max identifiers per batch")
	flag.Int64Var(&MaxBodyBytes, "m", 1<<20, "max request body size in bytes")
	flag.IntVar(&Workers, "w", 0, "validation workers per batch, GOMAXPROCS when 0")

	flag.Parse()

	LoadEnv()
}

// LoadEnv overrides the current values with any environment variables set.
func LoadEnv() {
	envRunAddr := os.Getenv("RUN_ADDRESS")
	if envRunAddr != "" {
		RunAddr = envRunAddr
	}

	envDBConnection := os.Getenv("DATABASE_URI")
	if envDBConnection != "" {
		DataBaseURL = envDBConnection
	}

	envJWTSecret := os.Getenv("JWT_SECRET")
	if envJWTSecret != "" {
		JWTSecret = envJWTSecret
	}

	envLogLevel := os.Getenv("LOG_LEVEL")
	if envLogLevel != "" {
		LogLevel = envLogLevel
	}

	if n, err := strconv.Atoi(os.Getenv("MAX_BATCH_SIZE")); err == nil && n > 0 {
		MaxBatchSize = n
	}

	if n, err := strconv.ParseInt(os.Getenv("MAX_BODY_BYTES"), 10, 64); err == nil && n > 0 {
		MaxBodyBytes = n
	}

	if n, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil && n >= 0 {
		Workers = n
	}
}
