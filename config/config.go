package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Production  bool
	FrontendURL string
	// SMTP Relay Configuration
	SMTPHost           string
	SMTPPort           int
	SMTPSecure         bool // true = implicit TLS (465), false = STARTTLS (587)
	SMTPUsername       string
	SMTPPassword       string
	SMTPTimeoutSeconds int
	// Contact form addressing
	SMTPFromEmail  string // Verified sender address (may differ from SMTP login)
	ContactEmailTo string
	// Owner profile rendered into outgoing emails
	OwnerName    string
	OwnerTitle   string
	OwnerWebsite string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Production:  getEnv("GIN_MODE", "") == "release",
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Relay Configuration
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPSecure:         getEnvBool("SMTP_SECURE", false),
		SMTPUsername:       getEnv("SMTP_USER", ""),
		SMTPPassword:       getEnv("SMTP_PASS", ""),
		SMTPTimeoutSeconds: getEnvInt("SMTP_TIMEOUT_SECONDS", 10),
		// Contact form addressing
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		// Owner profile
		OwnerName:    getEnv("OWNER_NAME", "Portfolio Owner"),
		OwnerTitle:   getEnv("OWNER_TITLE", "Software Engineer"),
		OwnerWebsite: strings.TrimRight(getEnv("OWNER_WEBSITE", ""), "/"),
	}

	// The relay login doubles as sender and recipient unless set explicitly
	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = cfg.SMTPUsername
	}
	if cfg.ContactEmailTo == "" {
		cfg.ContactEmailTo = cfg.SMTPUsername
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP_USER/SMTP_PASS not configured. Contact form will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
