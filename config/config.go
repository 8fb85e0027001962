package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-client/auth"
	"github.com/yeremiapane/restaurant-client/session"
)

// Config memegang konfigurasi runtime client. Semuanya lewat environment
// variable supaya tidak ada base URL hard-coded di kode halaman.
type Config struct {
	// APIBaseURL termasuk prefix /api, contoh: https://api.yenhafood.site/api
	APIBaseURL string

	HTTPTimeout time.Duration
	SessionTTL  time.Duration
	AuthTTL     time.Duration

	// LocalStorePath lokasi file SQLite untuk state lintas proses
	LocalStorePath string
}

// Load membaca .env (jika ada) lalu environment, dengan default yang
// masuk akal untuk development.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		HTTPTimeout:    getDuration("HTTP_TIMEOUT", 15*time.Second),
		SessionTTL:     getDuration("SESSION_TTL", session.DefaultTTL),
		AuthTTL:        getDuration("AUTH_TTL", auth.DefaultTTL),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", "restaurant-client.db"),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
