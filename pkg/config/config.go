package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string

	// AI provider selection ("gemini", "ollama" or "auto")
	AIProvider    string
	GeminiApiKey  string
	OllamaBaseURL string
	OllamaModel   string

	// Outbound mail (RFP invitations)
	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string

	// Inbound mail (vendor reply polling)
	IMAPHost   string
	IMAPPort   int
	IMAPSecure bool
	IMAPUser   string
	IMAPPass   string

	PollInterval time.Duration
	PollTimeout  time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "4000"),
		DatabaseURL:   getEnv("DATABASE_URL", "file:./dev.db"),
		AIProvider:    getEnv("AI_PROVIDER", "auto"),
		GeminiApiKey:  getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPSecure:    os.Getenv("SMTP_SECURE") == "true",
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		SMTPFrom:      getEnv("SMTP_FROM", ""),
		IMAPHost:      getEnv("IMAP_HOST", ""),
		IMAPPort:      getEnvInt("IMAP_PORT", 993),
		IMAPSecure:    os.Getenv("IMAP_SECURE") != "false",
		IMAPUser:      getEnv("IMAP_USER", ""),
		IMAPPass:      getEnv("IMAP_PASS", ""),
		PollInterval:  getEnvDuration("POLL_INTERVAL", 2*time.Minute),
		PollTimeout:   getEnvDuration("POLL_TIMEOUT", 2*time.Minute),
	}

	if cfg.GeminiApiKey == "" {
		logrus.Warn("GEMINI_API_KEY is not set. AI features will fall back to Ollama.")
	}
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logrus.Warn("SMTP configuration incomplete. Email sending will not work.")
	}

	return cfg
}

// IMAPConfigured reports whether all credentials required to open the
// vendor-reply mailbox are present.
func (c *Config) IMAPConfigured() bool {
	return c.IMAPHost != "" && c.IMAPUser != "" && c.IMAPPass != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
