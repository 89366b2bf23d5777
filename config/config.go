package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config collapses the environment into one immutable snapshot taken at
// startup; nothing below the composition root reads env vars.
type Config struct {
	Addr        string
	DatabaseURL string
	SQLitePath  string

	JWTSecret      string
	JWTIssuer      string
	TokenTTL       time.Duration
	MFATokenSecret string

	BcryptCost     int
	CodeTTL        time.Duration
	ResendCooldown time.Duration

	EmailTransport  string
	ResendAPIKey    string
	EmailFrom       string
	EmailDebugCodes bool

	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %s", err)
	}

	cfg := Config{
		Addr:            envOr("HTTP_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      envOr("SQLITE_PATH", "campuseats.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTIssuer:       envOr("JWT_ISSUER", "campuseats"),
		TokenTTL:        envDuration("TOKEN_TTL", 7*24*time.Hour),
		MFATokenSecret:  os.Getenv("MFA_JWT_SECRET"),
		BcryptCost:      envInt("BCRYPT_COST", 0),
		CodeTTL:         envDuration("CODE_TTL", 10*time.Minute),
		ResendCooldown:  envDuration("RESEND_COOLDOWN", 60*time.Second),
		EmailTransport:  envOr("EMAIL_TRANSPORT", "resend"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		EmailFrom:       envOr("EMAIL_FROM", "CampusEats <no-reply@campuseats.local>"),
		EmailDebugCodes: os.Getenv("EMAIL_DEBUG_CODES") == "true",
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.MFATokenSecret == "" {
		cfg.MFATokenSecret = cfg.JWTSecret
	}
	return cfg
}

// IncludeDevCodes reports whether plaintext one-time codes are echoed in
// responses: explicitly enabled, or the configured transport cannot
// actually deliver mail.
func (c Config) IncludeDevCodes() bool {
	return c.EmailDebugCodes || c.EmailTransport == "json" || c.ResendAPIKey == ""
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s %q, using default", key, value)
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s %q, using default", key, value)
		return fallback
	}
	return parsed
}
