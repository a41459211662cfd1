package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config keeps the runtime settings for the server.
type Config struct {
	Port     string
	DBPath   string
	Location *time.Location
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		Port:     strings.TrimSpace(os.Getenv("PORT")),
		DBPath:   strings.TrimSpace(os.Getenv("DB_PATH")),
		Location: loadLocation(strings.TrimSpace(os.Getenv("TZ"))),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "choreboard.db")
	}
	return cfg
}

func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
