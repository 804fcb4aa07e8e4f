package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	c, err := LoadConfig("config.toml")
	require.NoError(t, err)

	assert.Equal(t, "8081", c.HTTP.Port)
	assert.Equal(t, []string{"https://pcc1.news", "https://www.pcc1.news"}, c.HTTP.AllowedOrigins)
	assert.Equal(t, 10*time.Second, c.Captcha.HTTPTimeout)
	assert.Equal(t, "resend", c.Mailer.Provider)
	assert.Equal(t, uint32(5), c.Mailer.Breaker.ConsecutiveFailures)
	assert.Equal(t, 8, c.Outbox.MaxAttempts)
	assert.Equal(t, time.Hour, c.Outbox.MaxBackoff)
	assert.Equal(t, "support@pcc1.news", c.Notify.SupportRecipient)
	assert.True(t, c.Stripe.AutomaticTax)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("HCAPTCHA_SECRET_KEY", "hc-secret")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("CONTACT_EMAIL_SENDER", "noreply@pcc1.news")
	t.Setenv("CONTACT_EMAIL_RECIPIENT", "inbox@pcc1.news")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test")
	t.Setenv("MYSQL_DSN", "u:p@tcp(db:3306)/pcc1?parseTime=true")
	t.Setenv("OUTBOX__BATCH_SIZE", "7")

	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "hc-secret", c.Captcha.SecretKey)
	assert.Equal(t, "re_123", c.Mailer.ResendAPIKey)
	assert.Equal(t, "noreply@pcc1.news", c.Mailer.FromEmail)
	assert.Equal(t, "inbox@pcc1.news", c.Notify.SupportRecipient)
	assert.Equal(t, "sk_test", c.Stripe.SecretKey)
	assert.Equal(t, "u:p@tcp(db:3306)/pcc1?parseTime=true", c.DB.DSN)
	assert.Equal(t, 7, c.Outbox.BatchSize)

	// defaults
	assert.True(t, c.Stripe.AutomaticTax)
	assert.Equal(t, "https://pcc1.news/shop", c.Waitlist.ShopBaseURL)
	assert.Equal(t, 20, c.RateLimit.WaitlistPerIP)
}

func TestLoadConfigNoSupportRecipient(t *testing.T) {
	t.Setenv("CONTACT_EMAIL_RECIPIENT", "")
	os.Unsetenv("CONTACT_EMAIL_RECIPIENT")
	t.Setenv("CONTACT_EMAIL_SENDER", "hello@pcc1.news")

	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "hello@pcc1.news", c.Mailer.FromEmail)
	// left empty so the contact dispatcher reports a configuration error
	assert.Empty(t, c.Notify.SupportRecipient)
}

func TestDSNFromEnv(t *testing.T) {
	for _, k := range []string{"MYSQL_HOST", "MYSQL_PORT", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DATABASE", "MYSQL_TLS_CA_PATH"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	assert.Empty(t, dsnFromEnv())

	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "u")
	t.Setenv("MYSQL_PASSWORD", "p")
	t.Setenv("MYSQL_DATABASE", "pcc1")
	assert.Equal(t, "u:p@tcp(db:3306)/pcc1?charset=utf8mb4&parseTime=true", dsnFromEnv())

	t.Setenv("MYSQL_TLS_CA_PATH", "/etc/ssl/ca.pem")
	assert.Equal(t, "u:p@tcp(db:3306)/pcc1?charset=utf8mb4&parseTime=true&tls=custom", dsnFromEnv())
}
