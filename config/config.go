package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	SeedDir        string
	AdminWord      string
	LogLevel       zerolog.Level
	CommentsFlush  time.Duration
}

// Load reads .env from the working directory when present, then the
// environment.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}

	flush, err := time.ParseDuration(getEnv("COMMENTS_FLUSH", "1s"))
	if err != nil {
		return nil, errors.Wrap(err, "COMMENTS_FLUSH")
	}
	if flush <= 0 {
		return nil, errors.Errorf("COMMENTS_FLUSH must be positive, got %s", flush)
	}

	return &Config{
		Addr:           getEnv("ADDR", ":8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:7777,http://localhost:8080")),
		SeedDir:        getEnv("SEED_DIR", ""),
		AdminWord:      getEnv("ADMIN_WORD", ""),
		LogLevel:       level,
		CommentsFlush:  flush,
	}, nil
}

func splitList(v string) []string {
	var list []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
