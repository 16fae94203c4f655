package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is everything main needs, read from the environment after .env has
// been loaded.
type Config struct {
	Port        string
	GinMode     string
	CorsOrigins []string

	DBDriver string // mysql | postgres

	JWTSecret string
	TokenTTL  time.Duration

	HotelContextTTL time.Duration

	SeedEmail    string
	SeedPassword string
}

func Load() Config {
	return Config{
		Port:            envOrDefault("PORT", "8080"),
		GinMode:         envOrDefault("GIN_MODE", "debug"),
		CorsOrigins:     parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		DBDriver:        strings.ToLower(envOrDefault("DB_DRIVER", "mysql")),
		JWTSecret:       envOrDefault("JWT_SECRET", "change-me-in-production"),
		TokenTTL:        durationOrDefault("TOKEN_TTL", 12*time.Hour),
		HotelContextTTL: durationOrDefault("HOTEL_CONTEXT_TTL", 30*time.Minute),
		SeedEmail:       envOrDefault("SEED_MANAGER_EMAIL", "manager@hotel.local"),
		SeedPassword:    envOrDefault("SEED_MANAGER_PASSWORD", "manager123"),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	// bare numbers are minutes
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Minute
	}
	return def
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
