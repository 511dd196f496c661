package config

import (
	"os"
	"strings"
)

type Config struct {
	ListenAddr   string
	GinMode      string
	AllowOrigins string
}

func Load() *Config {
	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}

// AllowOriginList splits the comma-separated CORS origin list.
func (c *Config) AllowOriginList() []string {
	parts := strings.Split(c.AllowOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
