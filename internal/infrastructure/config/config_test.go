package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSMTPEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("BIND_ADDRESS", "127.0.0.1")
	t.Setenv("EMAIL_HOST", "smtp.example.com")
	t.Setenv("EMAIL_PORT", "587")
	t.Setenv("EMAIL_USER", "boarding@example.com")
	t.Setenv("EMAIL_PASS", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setSMTPEnv(t)
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "boarding", cfg.MongoDB)
	assert.Equal(t, TransportSMTP, cfg.MailTransport)
	assert.Equal(t, 587, cfg.EmailPort)
	assert.Equal(t, "https://quickchart.io/qr", cfg.QRBaseURL)
	assert.Equal(t, "127.0.0.1:3000", cfg.ListenAddr())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setSMTPEnv(t)
	t.Setenv("MONGO_URI", "")
	t.Setenv("EMAIL_PASS", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
	assert.Contains(t, err.Error(), "EMAIL_PASS")
}

func TestValidate_GmailTransport(t *testing.T) {
	cfg := &Config{
		MongoURI:      "mongodb://localhost:27017",
		BindAddress:   "0.0.0.0",
		EmailUser:     "boarding@example.com",
		MailTransport: TransportGmail,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GMAIL_REFRESH_TOKEN")
	assert.NotContains(t, err.Error(), "EMAIL_HOST")

	cfg.GmailClientID = "id"
	cfg.GmailClientSecret = "secret"
	cfg.GmailRefreshToken = "token"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownTransport(t *testing.T) {
	cfg := &Config{MongoURI: "x", BindAddress: "x", EmailUser: "x", MailTransport: "pigeon"}
	assert.ErrorContains(t, cfg.Validate(), "pigeon")
}
