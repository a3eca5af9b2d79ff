// Package config centralizes the environment surface of the server.
// All values are read once at startup; collaborators receive the struct
// (or single fields) instead of calling os.Getenv themselves.
package config

import "os"

// Config holds every environment-driven setting consumed by the server.
type Config struct {
	// Port is the HTTP listen port (without colon).
	Port string

	// DatabaseURL is the Postgres DSN.
	DatabaseURL string

	// JWTSecret signs session tokens. Must be set in production.
	JWTSecret string

	// ClientURL is the frontend origin allowed by CORS and linked in
	// the welcome email.
	ClientURL string

	// AppEnv is the runtime mode ("development" or "production").
	AppEnv string

	// Resend mail provider settings.
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string

	// Redis presence registry settings. Empty host disables Redis.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// S3-compatible object storage for image attachments.
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string
	// S3PublicBaseURL is the URL prefix under which uploaded objects are
	// publicly reachable, e.g. a CDN or the bucket website endpoint.
	S3PublicBaseURL string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:            getenv("PORT", "3000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		ClientURL:       getenv("CLIENT_URL", "http://localhost:5173"),
		AppEnv:          getenv("APP_ENV", "development"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		EmailFrom:       os.Getenv("EMAIL_FROM"),
		EmailFromName:   os.Getenv("EMAIL_FROM_NAME"),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getenv("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3BaseEndpoint:  os.Getenv("S3_BASE_ENDPOINT"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
