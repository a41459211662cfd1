package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("TZ", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBPath == "" {
		t.Fatal("expected a default db path")
	}
	if cfg.Location != time.UTC {
		t.Fatalf("expected UTC, got %v", cfg.Location)
	}
}

func TestLoadInvalidTimezoneFallsBack(t *testing.T) {
	t.Setenv("TZ", "Not/AZone")

	cfg := Load()
	if cfg.Location != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", cfg.Location)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/chores.db")
	t.Setenv("TZ", "Europe/Lisbon")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DBPath != "/tmp/chores.db" {
		t.Fatalf("expected explicit db path, got %q", cfg.DBPath)
	}
	if cfg.Location.String() != "Europe/Lisbon" {
		t.Fatalf("expected Europe/Lisbon, got %v", cfg.Location)
	}
}
