package mail

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/pcc1news/pcc1-manager/internal/metrics"
	"github.com/sony/gobreaker"
)

//go:embed templates/*
var templatesFS embed.FS

const (
	ProviderResend   = "resend"
	ProviderSendgrid = "sendgrid"
)

type Config struct {
	Provider       string        `mapstructure:"provider"`
	ResendAPIKey   string        `mapstructure:"resend_api_key"`
	SendgridAPIKey string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_name"`
	SendTimeout    time.Duration `mapstructure:"send_timeout"`
	Breaker        BreakerConfig `mapstructure:"breaker"`
}

type Mailer struct {
	sender         dependency.Sender
	mailRepository dependency.Mail
	c              *Config
	cb             *gobreaker.CircuitBreaker
	cfgErr         error
	html           map[templateName]*htmltemplate.Template
	text           map[templateName]*texttemplate.Template
}

// New builds a mailer for the configured provider. A missing API key does not
// fail construction; Ready reports it instead.
func New(c *Config, mailRepository dependency.Mail) (*Mailer, error) {
	sender, err := newSender(c)
	m, nerr := newMailer(c, sender, mailRepository)
	if nerr != nil {
		return nil, nerr
	}
	m.cfgErr = err
	return m, nil
}

// NewWithSender builds a mailer around an already constructed sender.
func NewWithSender(c *Config, sender dependency.Sender, mailRepository dependency.Mail) (*Mailer, error) {
	return newMailer(c, sender, mailRepository)
}

func newMailer(c *Config, sender dependency.Sender, mailRepository dependency.Mail) (*Mailer, error) {
	if c.SendTimeout == 0 {
		c.SendTimeout = 10 * time.Second
	}
	m := &Mailer{
		sender:         sender,
		mailRepository: mailRepository,
		c:              c,
		cb:             newBreaker(c.Provider, c.Breaker),
		html:           make(map[templateName]*htmltemplate.Template),
		text:           make(map[templateName]*texttemplate.Template),
	}
	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return m, nil
}

// Ready returns an error when the mailer can't send anything.
func (m *Mailer) Ready() error {
	if m.cfgErr != nil {
		return m.cfgErr
	}
	if m.sender == nil {
		return fmt.Errorf("mail sender: %w", gerr.ErrMissingConfig)
	}
	if m.c.FromEmail == "" {
		return fmt.Errorf("mail from email: %w", gerr.ErrMissingConfig)
	}
	return nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		templatePath := path.Join(templateDir, entry.Name())
		ext := path.Ext(entry.Name())
		tn := templateName(strings.TrimSuffix(entry.Name(), ext))

		switch ext {
		case ".gohtml":
			tmpl, err := htmltemplate.ParseFS(templatesFS, templatePath)
			if err != nil {
				return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
			}
			m.html[tn] = tmpl
		case ".txt":
			tmpl, err := texttemplate.ParseFS(templatesFS, templatePath)
			if err != nil {
				return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
			}
			m.text[tn] = tmpl
		}
	}

	for tn := range templateSubjects {
		if _, ok := m.html[tn]; !ok {
			return fmt.Errorf("html template not found: %v: %w", tn, fs.ErrNotExist)
		}
	}

	return nil
}

func (m *Mailer) from() string {
	if m.c.FromName == "" {
		return m.c.FromEmail
	}
	return fmt.Sprintf("%s <%s>", m.c.FromName, m.c.FromEmail)
}

func (m *Mailer) buildSendMailRequest(idempotencyKey string, to string, tn templateName, subject string, data any) (*entity.SendEmailRequest, error) {
	tmpl, ok := m.html[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}

	html := &strings.Builder{}
	if err := tmpl.Execute(html, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	text := &strings.Builder{}
	if tt, ok := m.text[tn]; ok {
		if err := tt.Execute(text, data); err != nil {
			return nil, fmt.Errorf("error executing text template: %w", err)
		}
	}

	return &entity.SendEmailRequest{
		IdempotencyKey: sql.NullString{String: idempotencyKey, Valid: idempotencyKey != ""},
		From:           m.from(),
		To:             to,
		Subject:        subject,
		Html:           html.String(),
		Text:           text.String(),
	}, nil
}

// send delivers the email and records the attempt. A provider failure is
// returned wrapped in gerr.MailSendFailed; anything else is unexpected.
func (m *Mailer) send(ctx context.Context, tn templateName, ser *entity.SendEmailRequest) error {
	if err := m.Ready(); err != nil {
		return err
	}

	start := time.Now()
	providerId, sendErr := m.execute(ctx, ser)
	metrics.MailSendDuration.WithLabelValues(m.c.Provider).Observe(time.Since(start).Seconds())

	if sendErr != nil {
		metrics.MailSends.WithLabelValues(m.c.Provider, string(tn), "failed").Inc()
		slog.Default().ErrorContext(ctx, "can't send mail",
			slog.String("template", string(tn)),
			slog.String("err", sendErr.Error()),
		)
		ser.Sent = false
		ser.ErrMsg = sql.NullString{String: sendErr.Error(), Valid: true}
		if _, err := m.mailRepository.AddMail(ctx, ser); err != nil {
			return fmt.Errorf("error recording failed email: %w", err)
		}
		return fmt.Errorf("%w: %s", gerr.MailSendFailed, sendErr.Error())
	}

	metrics.MailSends.WithLabelValues(m.c.Provider, string(tn), "sent").Inc()
	ser.Sent = true
	ser.ProviderId = sql.NullString{String: providerId, Valid: providerId != ""}
	if _, err := m.mailRepository.AddMail(ctx, ser); err != nil {
		return fmt.Errorf("error recording sent email: %w", err)
	}

	slog.Default().InfoContext(ctx, "mail sent",
		slog.String("template", string(tn)),
		slog.String("provider_id", providerId),
	)
	return nil
}

func (m *Mailer) execute(ctx context.Context, ser *entity.SendEmailRequest) (string, error) {
	res, err := m.cb.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, m.c.SendTimeout)
		defer cancel()
		return m.sender.Send(ctx, ser)
	})
	if err != nil {
		return "", err
	}
	id, _ := res.(string)
	return id, nil
}
