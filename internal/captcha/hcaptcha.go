// Package captcha verifies hCaptcha tokens.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/pcc1news/pcc1-manager/internal/metrics"
)

const DefaultVerifyURL = "https://api.hcaptcha.com/siteverify"

type Config struct {
	SecretKey   string        `mapstructure:"secret_key"`
	VerifyURL   string        `mapstructure:"verify_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

type Verifier struct {
	c      *Config
	client *http.Client
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

func New(c *Config) *Verifier {
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if c.VerifyURL == "" {
		c.VerifyURL = DefaultVerifyURL
	}
	return &Verifier{
		c:      c,
		client: &http.Client{Timeout: timeout},
	}
}

// Ready returns an error if the secret key is not configured.
func (v *Verifier) Ready() error {
	if v.c.SecretKey == "" {
		return fmt.Errorf("captcha secret key: %w", gerr.ErrMissingConfig)
	}
	return nil
}

// Verify asks hCaptcha whether the token is valid. Any transport, status or
// decoding problem counts as a failed verification.
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	ok, err := v.verify(ctx, token)
	if err != nil {
		slog.Default().ErrorContext(ctx, "captcha verification error",
			slog.String("err", err.Error()),
		)
		metrics.CaptchaVerifications.WithLabelValues("error").Inc()
		return false
	}
	if !ok {
		metrics.CaptchaVerifications.WithLabelValues("rejected").Inc()
		return false
	}
	metrics.CaptchaVerifications.WithLabelValues("accepted").Inc()
	return true
}

func (v *Verifier) verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	if err := v.Ready(); err != nil {
		return false, err
	}

	form := url.Values{}
	form.Set("secret", v.c.SecretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.c.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", v.c.VerifyURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, v.c.VerifyURL)
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode verify response: %w", err)
	}
	if !result.Success {
		slog.Default().InfoContext(ctx, "captcha rejected",
			slog.Any("error_codes", result.ErrorCodes),
		)
	}
	return result.Success, nil
}
