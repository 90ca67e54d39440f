package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Mail transport. EmailUser doubles as the sender address. Credentials
	// are not validated here: a missing account surfaces on the first send
	// attempt, not at startup.
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=biovibe port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		EmailUser:   getEnv("EMAIL_USER", ""),
		EmailPass:   getEnv("EMAIL_PASS", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is required in every environment.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=biovibe port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the local default; set a real Postgres DSN for production.")
	}
	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("[WARN] EMAIL_USER/EMAIL_PASS not set; order emails will fail until configured.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
