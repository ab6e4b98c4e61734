package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "AI_API_KEY", "AI_BASE_URL", "AI_MODEL",
		"AI_TIMEOUT", "TRIAL_DAYS",
		"DATABASE_URL_1", "DATABASE_URL_2", "DATABASE_URL_3",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/app")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.AITimeout != 4*time.Second {
		t.Errorf("expected default AI timeout 4s, got %v", cfg.AITimeout)
	}
	if cfg.TrialDays != 3 {
		t.Errorf("expected default trial of 3 days, got %d", cfg.TrialDays)
	}
	if len(cfg.DatabaseURLs) != 1 || cfg.DatabaseURLs[0] != "postgres://localhost/app" {
		t.Errorf("unexpected database urls: %v", cfg.DatabaseURLs)
	}
}

func TestLoad_NumberedURLsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/fallback")
	t.Setenv("DATABASE_URL_1", "postgres://db1/app")
	t.Setenv("DATABASE_URL_2", "postgres://db2/app")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"postgres://db1/app", "postgres://db2/app"}
	if len(cfg.DatabaseURLs) != len(want) {
		t.Fatalf("expected %d urls, got %v", len(want), cfg.DatabaseURLs)
	}
	for i, url := range want {
		if cfg.DatabaseURLs[i] != url {
			t.Errorf("url %d: expected %s, got %s", i, url, cfg.DatabaseURLs[i])
		}
	}
}

func TestLoad_NumberedURLsStopAtGap(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL_1", "postgres://db1/app")
	t.Setenv("DATABASE_URL_3", "postgres://db3/app")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.DatabaseURLs) != 1 {
		t.Errorf("expected the list to stop at the gap, got %v", cfg.DatabaseURLs)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without any database url")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("PORT", "9090")
	t.Setenv("AI_API_KEY", "key-123")
	t.Setenv("AI_MODEL", "gemini-2.5-pro")
	t.Setenv("AI_TIMEOUT", "10")
	t.Setenv("TRIAL_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.AIAPIKey != "key-123" {
		t.Errorf("unexpected api key: %q", cfg.AIAPIKey)
	}
	if cfg.AIModel != "gemini-2.5-pro" {
		t.Errorf("unexpected model: %q", cfg.AIModel)
	}
	if cfg.AITimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.AITimeout)
	}
	if cfg.TrialDays != 7 {
		t.Errorf("expected 7 trial days, got %d", cfg.TrialDays)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("PORT", "not-a-port")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Port)
	}
}
