// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TransportSMTP  = "smtp"
	TransportGmail = "gmail"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	BindAddress  string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL catalog, optional
	PostgresURI string

	// Mail
	MailTransport string
	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string

	// Artifacts
	QRBaseURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		BindAddress:  getEnv("BIND_ADDRESS", ""),
		Port:         getEnv("PORT", "3000"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "boarding"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_URI", ""),

		MailTransport: strings.ToLower(getEnv("MAIL_TRANSPORT", TransportSMTP)),
		EmailHost:     getEnv("EMAIL_HOST", ""),
		EmailPort:     getEnvAsInt("EMAIL_PORT", 0),
		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPassword: getEnv("EMAIL_PASS", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),

		QRBaseURL: getEnv("QR_BASE_URL", "https://quickchart.io/qr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every missing required setting for the selected mail transport
func (c *Config) Validate() error {
	var missing []string

	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.BindAddress == "" {
		missing = append(missing, "BIND_ADDRESS")
	}
	if c.EmailUser == "" {
		missing = append(missing, "EMAIL_USER")
	}

	switch c.MailTransport {
	case TransportSMTP:
		if c.EmailHost == "" {
			missing = append(missing, "EMAIL_HOST")
		}
		if c.EmailPort == 0 {
			missing = append(missing, "EMAIL_PORT")
		}
		if c.EmailPassword == "" {
			missing = append(missing, "EMAIL_PASS")
		}
	case TransportGmail:
		if c.GmailClientID == "" {
			missing = append(missing, "GMAIL_CLIENT_ID")
		}
		if c.GmailClientSecret == "" {
			missing = append(missing, "GMAIL_CLIENT_SECRET")
		}
		if c.GmailRefreshToken == "" {
			missing = append(missing, "GMAIL_REFRESH_TOKEN")
		}
	default:
		return fmt.Errorf("unsupported MAIL_TRANSPORT %q", c.MailTransport)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ListenAddr is the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.BindAddress, c.Port)
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
