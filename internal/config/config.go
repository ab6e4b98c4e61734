package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURLs []string

	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration

	TrialDays int
}

// Load reads .env (when present) and the environment. At least one database
// URL is required; everything else has a default.
func Load() (Config, error) {
	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Port:      envInt("PORT", 8080),
		AIAPIKey:  os.Getenv("AI_API_KEY"),
		AIBaseURL: os.Getenv("AI_BASE_URL"),
		AIModel:   os.Getenv("AI_MODEL"),
		AITimeout: time.Duration(envInt("AI_TIMEOUT", 4)) * time.Second,
		TrialDays: envInt("TRIAL_DAYS", 3),
	}

	cfg.DatabaseURLs = databaseURLs()
	if len(cfg.DatabaseURLs) == 0 {
		return Config{}, errors.New("config: DATABASE_URL (or DATABASE_URL_1..n) is not set")
	}

	return cfg, nil
}

// databaseURLs collects the ordered rotation list: DATABASE_URL_1..n first,
// falling back to a single DATABASE_URL.
func databaseURLs() []string {
	var urls []string
	for i := 1; ; i++ {
		url := os.Getenv(fmt.Sprintf("DATABASE_URL_%d", i))
		if url == "" {
			break
		}
		urls = append(urls, url)
	}
	if len(urls) == 0 {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
