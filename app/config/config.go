package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the full environment surface, resolved once at startup.
// MONGO_URI selects the mongo store; absent means in-memory. The three B2
// variables select durable file storage; absent means placeholder URLs.
// Admin credentials are optional; when unset the admin endpoints stay
// open, matching the original deployment.
type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	B2AccountID string
	B2AppKey    string
	B2Bucket    string

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string

	StaticDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	return &Config{
		Port:              getenv("PORT", "5000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getenv("MONGO_DB", "school"),
		B2AccountID:       os.Getenv("B2_ACCOUNT_ID"),
		B2AppKey:          os.Getenv("B2_APP_KEY"),
		B2Bucket:          os.Getenv("B2_BUCKET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getenv("JWT_SECRET", "trio-homework-secret"),
		StaticDir:         getenv("STATIC_DIR", "./static"),
	}
}

// AdminConfigured reports whether server-side admin auth is switched on.
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}

// B2Configured reports whether durable file storage is switched on.
func (c *Config) B2Configured() bool {
	return c.B2AccountID != "" && c.B2AppKey != "" && c.B2Bucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
