package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	httpapi "github.com/pcc1news/pcc1-manager/internal/api/http"
	"github.com/pcc1news/pcc1-manager/internal/auth/jwt"
	"github.com/pcc1news/pcc1-manager/internal/captcha"
	"github.com/pcc1news/pcc1-manager/internal/mail"
	"github.com/pcc1news/pcc1-manager/internal/notify"
	"github.com/pcc1news/pcc1-manager/internal/outbox"
	"github.com/pcc1news/pcc1-manager/internal/payment/stripe"
	"github.com/pcc1news/pcc1-manager/internal/ratelimit"
	"github.com/pcc1news/pcc1-manager/internal/store"
	"github.com/pcc1news/pcc1-manager/internal/waitlist"
	"github.com/pcc1news/pcc1-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      jwt.Config       `mapstructure:"auth"`
	Captcha   captcha.Config   `mapstructure:"hcaptcha"`
	Mailer    mail.Config      `mapstructure:"mailer"`
	Notify    notify.Config    `mapstructure:"notify"`
	Waitlist  waitlist.Config  `mapstructure:"waitlist"`
	Outbox    outbox.Config    `mapstructure:"outbox"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
	Stripe    stripe.Config    `mapstructure:"stripe"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values. A .env file
// in the working directory is loaded first when present.
// Nested keys map to env vars with double underscores, e.g. MYSQL__DSN for
// mysql.dsn; the flat names bound in bindEnvVars work as well.
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/pcc1-manager")
		v.AddConfigPath("/etc/pcc1-manager")
		// optional, env vars alone are enough
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a DSN from MYSQL_HOST and friends.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user, password, database := os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_DATABASE")
	if user == "" || password == "" || database == "" {
		return ""
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)

	v.SetDefault("auth.jwt_ttl", 24*time.Hour)

	v.SetDefault("hcaptcha.verify_url", captcha.DefaultVerifyURL)
	v.SetDefault("hcaptcha.http_timeout", 10*time.Second)

	v.SetDefault("mailer.provider", "resend")
	v.SetDefault("mailer.from_name", "PCC1")
	v.SetDefault("mailer.send_timeout", 10*time.Second)

	v.SetDefault("notify.shop_base_url", notify.DefaultShopBaseURL)
	v.SetDefault("notify.site_url", notify.DefaultSiteURL)
	v.SetDefault("notify.product_name", notify.DefaultProductName)
	v.SetDefault("waitlist.shop_base_url", notify.DefaultShopBaseURL)

	oc := outbox.DefaultConfig()
	v.SetDefault("outbox.worker_interval", oc.WorkerInterval)
	v.SetDefault("outbox.batch_size", oc.BatchSize)
	v.SetDefault("outbox.max_attempts", oc.MaxAttempts)
	v.SetDefault("outbox.initial_backoff", oc.InitialBackoff)
	v.SetDefault("outbox.max_backoff", oc.MaxBackoff)

	rc := ratelimit.DefaultConfig()
	v.SetDefault("rate_limit.waitlist_per_ip", rc.WaitlistPerIP)
	v.SetDefault("rate_limit.waitlist_per_email", rc.WaitlistPerEmail)
	v.SetDefault("rate_limit.contact_per_ip", rc.ContactPerIP)
	v.SetDefault("rate_limit.contact_per_email", rc.ContactPerEmail)
	v.SetDefault("rate_limit.newsletter_per_ip", rc.NewsletterPerIP)
	v.SetDefault("rate_limit.checkout_per_ip", rc.CheckoutPerIP)

	v.SetDefault("stripe.automatic_tax", true)
}

// bindEnvVars binds the flat environment variable names used by the hosted
// deployment to config keys.
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.hook_secret", "HOOK_SECRET")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// hCaptcha
	v.BindEnv("hcaptcha.secret_key", "HCAPTCHA_SECRET_KEY")
	v.BindEnv("hcaptcha.verify_url", "HCAPTCHA_VERIFY_URL")

	// Mailer
	v.BindEnv("mailer.provider", "MAILER_PROVIDER")
	v.BindEnv("mailer.resend_api_key", "RESEND_API_KEY")
	v.BindEnv("mailer.sendgrid_api_key", "SENDGRID_API_KEY")
	v.BindEnv("mailer.from_email", "CONTACT_EMAIL_SENDER")
	v.BindEnv("mailer.from_name", "MAILER_FROM_NAME")

	// Notifications
	v.BindEnv("notify.support_recipient", "CONTACT_EMAIL_RECIPIENT")
	v.BindEnv("notify.shop_base_url", "SHOP_BASE_URL")
	v.BindEnv("notify.site_url", "SITE_URL")
	v.BindEnv("waitlist.shop_base_url", "SHOP_BASE_URL")

	// Stripe
	v.BindEnv("stripe.secret_key", "STRIPE_SECRET_KEY")
	v.BindEnv("stripe.price_id", "STRIPE_PRICE_ID")
}
