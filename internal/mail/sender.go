package mail

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/resend/resend-go/v2"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// newSender returns the provider client selected by c.Provider.
func newSender(c *Config) (dependency.Sender, error) {
	switch c.Provider {
	case "", ProviderResend:
		c.Provider = ProviderResend
		if c.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend api key: %w", gerr.ErrMissingConfig)
		}
		return newResendSender(c.ResendAPIKey, c.SendTimeout), nil
	case ProviderSendgrid:
		if c.SendgridAPIKey == "" {
			return nil, fmt.Errorf("sendgrid api key: %w", gerr.ErrMissingConfig)
		}
		return &sendgridSender{cli: sendgrid.NewSendClient(c.SendgridAPIKey)}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q: %w", c.Provider, gerr.ErrMissingConfig)
	}
}

type resendSender struct {
	cli *resend.Client
}

func newResendSender(apiKey string, timeout time.Duration) *resendSender {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &resendSender{
		cli: resend.NewCustomClient(&http.Client{Timeout: timeout}, apiKey),
	}
}

func (s *resendSender) Send(ctx context.Context, ser *entity.SendEmailRequest) (string, error) {
	req := &resend.SendEmailRequest{
		From:    ser.From,
		To:      []string{ser.To},
		Subject: ser.Subject,
		Html:    ser.Html,
		Text:    ser.Text,
		ReplyTo: ser.ReplyTo,
	}
	resp, err := s.cli.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return resp.Id, nil
}

type sendgridSender struct {
	cli *sendgrid.Client
}

func newSendgridMessage(ser *entity.SendEmailRequest) *sgmail.SGMailV3 {
	m := sgmail.NewV3Mail()
	from, err := sgmail.ParseEmail(ser.From)
	if err != nil {
		from = sgmail.NewEmail("", ser.From)
	}
	m.SetFrom(from)
	m.Subject = ser.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", ser.To))
	m.AddPersonalizations(p)

	if ser.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", ser.ReplyTo))
	}
	// text/plain must precede text/html
	if ser.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", ser.Text))
	}
	m.AddContent(sgmail.NewContent("text/html", ser.Html))
	return m
}

func (s *sendgridSender) Send(ctx context.Context, ser *entity.SendEmailRequest) (string, error) {
	resp, err := s.cli.SendWithContext(ctx, newSendgridMessage(ser))
	if err != nil {
		return "", fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("sendgrid: bad status code %d: %s", resp.StatusCode, resp.Body)
	}
	return http.Header(resp.Headers).Get("X-Message-Id"), nil
}
