// Package notify turns inserted waitlist and contact rows into emails.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

const (
	workflowWaitlist = "waitlist"
	workflowContact  = "contact"
)

const (
	DefaultShopBaseURL = "https://pcc1.news/shop"
	DefaultSiteURL     = "https://pcc1.news"
	DefaultProductName = "Procyanidin Complex"
)

type Config struct {
	ShopBaseURL      string `mapstructure:"shop_base_url"`
	SiteURL          string `mapstructure:"site_url"`
	ProductName      string `mapstructure:"product_name"`
	SupportRecipient string `mapstructure:"support_recipient"`
}

// Dispatcher handles one row event at a time. Every call is terminal: the
// returned result tells the caller whether to consider the event done.
type Dispatcher struct {
	c        *Config
	captcha  dependency.CaptchaVerifier
	mailer   dependency.Mailer
	mailRepo dependency.Mail
	now      func() time.Time
}

func New(c *Config, captcha dependency.CaptchaVerifier, mailer dependency.Mailer, mailRepo dependency.Mail) *Dispatcher {
	if c.ShopBaseURL == "" {
		c.ShopBaseURL = DefaultShopBaseURL
	}
	if c.SiteURL == "" {
		c.SiteURL = DefaultSiteURL
	}
	if c.ProductName == "" {
		c.ProductName = DefaultProductName
	}
	return &Dispatcher{
		c:        c,
		captcha:  captcha,
		mailer:   mailer,
		mailRepo: mailRepo,
		now:      time.Now,
	}
}

// Dispatch routes the event by table. Events for other tables are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *dto.RowEvent) dto.DispatchResult {
	switch ev.Table {
	case entity.TableWaitlist:
		if err := d.ready(workflowWaitlist); err != nil {
			return d.configError(ctx, workflowWaitlist, err)
		}
		return d.waitlist(ctx, ev)
	case entity.TableContactMessages:
		if err := d.ready(workflowContact); err != nil {
			return d.configError(ctx, workflowContact, err)
		}
		return d.contact(ctx, ev)
	default:
		slog.Default().WarnContext(ctx, "ignoring event for unknown table",
			slog.String("table", ev.Table),
		)
		return result("unknown", OutcomeIgnored)
	}
}

// WaitlistTrigger handles a raw trigger body for the waitlist table.
func (d *Dispatcher) WaitlistTrigger(ctx context.Context, body []byte) dto.DispatchResult {
	if err := d.ready(workflowWaitlist); err != nil {
		return d.configError(ctx, workflowWaitlist, err)
	}
	ev, err := dto.ParseRowEvent(body)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't parse waitlist trigger",
			slog.String("err", err.Error()),
		)
		return result(workflowWaitlist, OutcomeBadRequest)
	}
	return d.waitlist(ctx, ev)
}

// ContactTrigger handles a raw trigger body for the contact_messages table.
func (d *Dispatcher) ContactTrigger(ctx context.Context, body []byte) dto.DispatchResult {
	if err := d.ready(workflowContact); err != nil {
		return d.configError(ctx, workflowContact, err)
	}
	ev, err := dto.ParseRowEvent(body)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't parse contact trigger",
			slog.String("err", err.Error()),
		)
		return result(workflowContact, OutcomeBadRequest)
	}
	return d.contact(ctx, ev)
}

// EventTrigger handles a raw row event for any table, routing it like Dispatch.
// Provider configuration is checked before the body is parsed, the same as
// for the per-table triggers.
func (d *Dispatcher) EventTrigger(ctx context.Context, body []byte) dto.DispatchResult {
	if err := d.providersReady(); err != nil {
		return d.configError(ctx, "unknown", err)
	}
	ev, err := dto.ParseRowEvent(body)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't parse row event",
			slog.String("err", err.Error()),
		)
		return result("unknown", OutcomeBadRequest)
	}
	return d.Dispatch(ctx, ev)
}

func (d *Dispatcher) providersReady() error {
	if err := d.captcha.Ready(); err != nil {
		return err
	}
	return d.mailer.Ready()
}

func (d *Dispatcher) ready(workflow string) error {
	if err := d.providersReady(); err != nil {
		return err
	}
	if workflow == workflowContact && d.c.SupportRecipient == "" {
		return fmt.Errorf("support recipient: %w", gerr.ErrMissingConfig)
	}
	return nil
}

func (d *Dispatcher) configError(ctx context.Context, workflow string, err error) dto.DispatchResult {
	slog.Default().ErrorContext(ctx, "notification dispatcher misconfigured",
		slog.String("workflow", workflow),
		slog.String("err", err.Error()),
	)
	return result(workflow, OutcomeConfigError)
}

func (d *Dispatcher) waitlist(ctx context.Context, ev *dto.RowEvent) dto.DispatchResult {
	if !ev.IsInsert() {
		slog.Default().WarnContext(ctx, "ignoring non-insert waitlist event",
			slog.String("type", ev.Type),
		)
		return result(workflowWaitlist, OutcomeIgnored)
	}

	rec, err := dto.ParseWaitlistRecord(ev.Record)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't parse waitlist record",
			slog.String("err", err.Error()),
		)
		return result(workflowWaitlist, OutcomeBadRequest)
	}

	if missing := rec.MissingFields(); len(missing) > 0 {
		slog.Default().ErrorContext(ctx, "waitlist record is missing required fields",
			slog.String("id", rec.Id.String()),
			slog.String("missing", strings.Join(missing, ",")),
		)
		return result(workflowWaitlist, OutcomeInvalidRecord)
	}

	key := idempotencyKey(entity.TableWaitlist, rec.Id.String())
	if o, done := d.alreadySent(ctx, key); done {
		return result(workflowWaitlist, o)
	}

	if !d.captcha.Verify(ctx, rec.HCaptchaToken) {
		slog.Default().WarnContext(ctx, "invalid captcha for waitlist entry",
			slog.String("id", rec.Id.String()),
		)
		return result(workflowWaitlist, OutcomeInvalidCaptcha)
	}

	details := dto.WaitlistRecordToConfirmation(rec, d.c.ShopBaseURL, d.c.SiteURL, d.c.ProductName, d.now())
	err = d.mailer.SendWaitlistConfirmation(ctx, key, rec.Email, details)
	return result(workflowWaitlist, d.sendOutcome(ctx, rec.Id.String(), err))
}

func (d *Dispatcher) contact(ctx context.Context, ev *dto.RowEvent) dto.DispatchResult {
	if !ev.IsInsert() {
		slog.Default().WarnContext(ctx, "ignoring non-insert contact event",
			slog.String("type", ev.Type),
		)
		return result(workflowContact, OutcomeIgnored)
	}

	rec, err := dto.ParseContactRecord(ev.Record)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't parse contact record",
			slog.String("err", err.Error()),
		)
		return result(workflowContact, OutcomeBadRequest)
	}

	if missing := rec.MissingFields(); len(missing) > 0 {
		slog.Default().ErrorContext(ctx, "contact record is missing required fields",
			slog.String("id", rec.Id.String()),
			slog.String("missing", strings.Join(missing, ",")),
		)
		return result(workflowContact, OutcomeInvalidRecord)
	}

	key := idempotencyKey(entity.TableContactMessages, rec.Id.String())
	if o, done := d.alreadySent(ctx, key); done {
		return result(workflowContact, o)
	}

	if !d.captcha.Verify(ctx, rec.HCaptchaToken) {
		slog.Default().WarnContext(ctx, "invalid captcha for contact message",
			slog.String("id", rec.Id.String()),
		)
		return result(workflowContact, OutcomeInvalidCaptcha)
	}

	details := dto.ContactRecordToNotification(rec, d.now())
	err = d.mailer.SendContactNotification(ctx, key, d.c.SupportRecipient, details)
	return result(workflowContact, d.sendOutcome(ctx, rec.Id.String(), err))
}

// idempotencyKey is empty for records without an id, which disables the
// duplicate check for them.
func idempotencyKey(table, id string) string {
	if id == "" {
		return ""
	}
	return table + ":" + id
}

func (d *Dispatcher) alreadySent(ctx context.Context, key string) (Outcome, bool) {
	if key == "" {
		return "", false
	}
	sent, err := d.mailRepo.IsSent(ctx, key)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't check sent notifications",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return OutcomeInternalError, true
	}
	if sent {
		slog.Default().InfoContext(ctx, "notification already sent",
			slog.String("key", key),
		)
		return OutcomeAlreadySent, true
	}
	return "", false
}

func (d *Dispatcher) sendOutcome(ctx context.Context, id string, err error) Outcome {
	switch {
	case err == nil:
		slog.Default().InfoContext(ctx, "notification email sent",
			slog.String("id", id),
		)
		return OutcomeSent
	case errors.Is(err, gerr.MailSendFailed):
		slog.Default().ErrorContext(ctx, "notification email sending failed",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		return OutcomeSendFailed
	default:
		slog.Default().ErrorContext(ctx, "unexpected error sending notification",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		return OutcomeInternalError
	}
}
