package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Mail      MailConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type MailConfig struct {
	Provider     string // "smtp" or "resend"
	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string
	ResendAPIKey string
	SenderName   string
	// Recipient is the owner inbox contact submissions are relayed to.
	Recipient string
}

type AuthConfig struct {
	JWTSecret string
	// OwnerKeyHash is the bcrypt hash of the owner access key.
	OwnerKeyHash string
	TokenTTL     time.Duration
}

type RateLimitConfig struct {
	Store         string // "memory" or "redis"
	Window        time.Duration
	MaxRequests   int
	SweepInterval time.Duration
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	OllamaBaseURL string
	GeminiAPIKey  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system env")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Mail: MailConfig{
			Provider:     getEnv("MAIL_PROVIDER", "resend"),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPEmail:    getEnv("SMTP_EMAIL", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			SenderName:   getEnv("MAIL_SENDER_NAME", "Portfolio"),
			Recipient:    getEnv("CONTACT_RECIPIENT_EMAIL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			OwnerKeyHash: getEnv("OWNER_ACCESS_KEY_HASH", ""),
			TokenTTL:     getEnvAsDuration("OWNER_TOKEN_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Store:         getEnv("RATE_LIMIT_STORE", "memory"),
			Window:        getEnvAsDuration("RATE_LIMIT_WINDOW", time.Hour),
			MaxRequests:   getEnvAsInt("RATE_LIMIT_MAX", 5),
			SweepInterval: getEnvAsDuration("RATE_LIMIT_SWEEP_INTERVAL", 10*time.Minute),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-1.5-flash"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
	}
}

// Validate fails fast on missing credentials so a misconfigured deploy dies
// at boot instead of surfacing a generic 500 on every request.
func (c *Config) Validate() error {
	if c.Database.Connection == "" {
		return fmt.Errorf("DB_CONNECTION_STRING is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.OwnerKeyHash == "" {
		return fmt.Errorf("OWNER_ACCESS_KEY_HASH is required")
	}
	if c.Mail.Recipient == "" {
		return fmt.Errorf("CONTACT_RECIPIENT_EMAIL is required")
	}

	switch c.Mail.Provider {
	case "smtp":
		if c.Mail.SMTPHost == "" || c.Mail.SMTPEmail == "" || c.Mail.SMTPPassword == "" {
			return fmt.Errorf("SMTP_HOST, SMTP_EMAIL and SMTP_PASSWORD are required for the smtp mail provider")
		}
	case "resend":
		if c.Mail.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required for the resend mail provider")
		}
		if c.Mail.SMTPEmail == "" {
			return fmt.Errorf("SMTP_EMAIL (sender address) is required for the resend mail provider")
		}
	default:
		return fmt.Errorf("unsupported mail provider: %s", c.Mail.Provider)
	}

	if c.Ai.LLMProvider == "gemini" && c.Ai.GeminiAPIKey == "" {
		return fmt.Errorf("GOOGLE_GEMINI_API_KEY is required for the gemini provider")
	}
	if c.RateLimit.Store == "redis" && c.App.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required for the redis rate-limit store")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
