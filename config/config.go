package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all startup configuration for the application.
// Nothing in here lives in package-level state; main builds one
// Config and hands it to whoever needs it.
type Config struct {
	Addr          string // listen address, e.g. ":8080"
	DBPath        string // sqlite database file
	SessionSecret string // cookie session signing key
	SessionName   string // session cookie name
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment, falling back to
// development defaults. A .env file in the working directory is
// loaded first if present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env file")
	}

	return Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "database/products.db"),
		SessionSecret: getEnv("SESSION_SECRET", "secret-key-123"),
		SessionName:   getEnv("SESSION_NAME", "gostore_session"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
