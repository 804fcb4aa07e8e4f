package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dependency/mocks"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixture struct {
	d        *Dispatcher
	captcha  *mocks.CaptchaVerifier
	mailer   *mocks.Mailer
	mailRepo *mocks.Mail
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		captcha:  mocks.NewCaptchaVerifier(t),
		mailer:   mocks.NewMailer(t),
		mailRepo: mocks.NewMail(t),
	}
	f.d = New(&Config{
		ShopBaseURL:      "https://pcc1.news/shop",
		SiteURL:          "https://pcc1.news",
		SupportRecipient: "support@pcc1.news",
	}, f.captcha, f.mailer, f.mailRepo)
	f.d.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) ready() {
	f.captcha.EXPECT().Ready().Return(nil)
	f.mailer.EXPECT().Ready().Return(nil)
}

const waitlistInsert = `{
	"type": "INSERT",
	"table": "waitlist",
	"record": {
		"id": "w1",
		"email": "a@example.com",
		"product_id": "pcc1-box",
		"quantity_interested": 3,
		"referral_code": "abc123",
		"hcaptcha_token": "token",
		"created_at": "2026-03-01T11:59:00.123456Z"
	},
	"old_record": null
}`

const contactInsert = `{
	"type": "INSERT",
	"table": "contact_messages",
	"record": {
		"id": "c1",
		"name": "Ada",
		"email": "ada@example.com",
		"message": "Hello",
		"hcaptcha_token": "token",
		"created_at": "2026-03-01T11:59:00Z"
	}
}`

func TestWaitlistTriggerSends(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "waitlist:w1").Return(false, nil).Once()
	f.captcha.EXPECT().Verify(ctx, "token").Return(true).Once()
	f.mailer.EXPECT().SendWaitlistConfirmation(ctx, "waitlist:w1", "a@example.com", mock.Anything).
		Run(func(_ context.Context, _ string, _ string, details *dto.WaitlistConfirmation) {
			assert.Equal(t, "https://pcc1.news/shop?ref=abc123", details.ReferralLink)
			assert.Equal(t, 3, details.Quantity)
			assert.True(t, details.ShowQuantity())
			assert.Equal(t, 2026, details.Year)
		}).
		Return(nil).Once()

	res := f.d.WaitlistTrigger(ctx, []byte(waitlistInsert))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Email sent successfully", res.Message)
}

func TestWaitlistTriggerIgnoresNonInsert(t *testing.T) {
	for _, body := range []string{
		`{"type":"UPDATE","table":"waitlist","record":{"id":"w1","email":"a@example.com","product_id":"p","hcaptcha_token":"t"}}`,
		`{"type":"INSERT","table":"waitlist"}`,
		`{"type":"INSERT","table":"waitlist","record":null}`,
	} {
		f := newFixture(t)
		f.ready()
		res := f.d.WaitlistTrigger(context.Background(), []byte(body))
		assert.Equal(t, http.StatusOK, res.Status, body)
		assert.Equal(t, "Ignoring non-insert event", res.Message)
	}
}

func TestWaitlistTriggerMissingFields(t *testing.T) {
	for _, field := range []string{"email", "product_id", "hcaptcha_token"} {
		t.Run(field, func(t *testing.T) {
			f := newFixture(t)
			f.ready()
			body := fmt.Sprintf(`{"type":"INSERT","table":"waitlist","record":{"id":"w1","email":"a@example.com","product_id":"p","hcaptcha_token":"t","%s":""}}`, field)
			res := f.d.WaitlistTrigger(context.Background(), []byte(body))
			assert.Equal(t, http.StatusOK, res.Status)
			assert.Equal(t, "Invalid record data", res.Message)
		})
	}
}

func TestWaitlistTriggerInvalidCaptcha(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "waitlist:w1").Return(false, nil).Once()
	f.captcha.EXPECT().Verify(ctx, "token").Return(false).Once()

	res := f.d.WaitlistTrigger(ctx, []byte(waitlistInsert))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Invalid captcha", res.Message)
}

func TestWaitlistTriggerAlreadySent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "waitlist:w1").Return(true, nil).Once()

	res := f.d.WaitlistTrigger(ctx, []byte(waitlistInsert))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Already notified", res.Message)
}

func TestWaitlistTriggerIsSentError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "waitlist:w1").Return(false, errors.New("db down")).Once()

	res := f.d.WaitlistTrigger(ctx, []byte(waitlistInsert))
	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestWaitlistTriggerSendErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"provider failure", fmt.Errorf("%w: 422", gerr.MailSendFailed), http.StatusOK, "Email sending failed"},
		{"unexpected", errors.New("template exploded"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.ready()
			f.mailRepo.EXPECT().IsSent(ctx, "waitlist:w1").Return(false, nil).Once()
			f.captcha.EXPECT().Verify(ctx, "token").Return(true).Once()
			f.mailer.EXPECT().SendWaitlistConfirmation(ctx, "waitlist:w1", "a@example.com", mock.Anything).Return(tt.err).Once()

			res := f.d.WaitlistTrigger(ctx, []byte(waitlistInsert))
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.status < http.StatusInternalServerError, res.Acked())
		})
	}
}

func TestWaitlistTriggerBadBody(t *testing.T) {
	f := newFixture(t)
	f.ready()
	res := f.d.WaitlistTrigger(context.Background(), []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Bad Request", res.Message)

	res = f.d.WaitlistTrigger(context.Background(), []byte(`{"type":"INSERT","record":"oops"}`))
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestWaitlistTriggerConfigError(t *testing.T) {
	f := newFixture(t)
	f.captcha.EXPECT().Ready().Return(gerr.ErrMissingConfig)

	res := f.d.WaitlistTrigger(context.Background(), []byte(`{not json`))
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, "Server configuration error", res.Message)
}

func TestWaitlistTriggerNoIdSkipsIdempotency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.captcha.EXPECT().Verify(ctx, "t").Return(true).Once()
	f.mailer.EXPECT().SendWaitlistConfirmation(ctx, "", "a@example.com", mock.Anything).Return(nil).Once()

	body := `{"type":"INSERT","table":"waitlist","record":{"email":"a@example.com","product_id":"p","hcaptcha_token":"t","referral_code":"r"}}`
	res := f.d.WaitlistTrigger(ctx, []byte(body))
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestContactTriggerSends(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "contact_messages:c1").Return(false, nil).Once()
	f.captcha.EXPECT().Verify(ctx, "token").Return(true).Once()
	f.mailer.EXPECT().SendContactNotification(ctx, "contact_messages:c1", "support@pcc1.news", mock.Anything).
		Run(func(_ context.Context, _ string, _ string, details *dto.ContactNotification) {
			assert.Equal(t, "Ada", details.Name)
			assert.Equal(t, "ada@example.com", details.Email)
			assert.Equal(t, "Mar 1, 2026 11:59 UTC", details.ReceivedAt)
		}).
		Return(nil).Once()

	res := f.d.ContactTrigger(ctx, []byte(contactInsert))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Email sent successfully", res.Message)
}

func TestContactTriggerMissingMessage(t *testing.T) {
	f := newFixture(t)
	f.ready()
	body := `{"type":"INSERT","table":"contact_messages","record":{"id":"c1","name":"Ada","email":"ada@example.com","hcaptcha_token":"t"}}`
	res := f.d.ContactTrigger(context.Background(), []byte(body))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Invalid record data", res.Message)
}

func TestContactTriggerMissingRecipient(t *testing.T) {
	f := newFixture(t)
	f.d.c.SupportRecipient = ""
	f.ready()
	res := f.d.ContactTrigger(context.Background(), []byte(contactInsert))
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, "Server configuration error", res.Message)
}

func TestDispatchRoutesByTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "contact_messages:c1").Return(true, nil).Once()
	ev, err := dto.ParseRowEvent([]byte(contactInsert))
	assert.NoError(t, err)
	res := f.d.Dispatch(ctx, ev)
	assert.Equal(t, "Already notified", res.Message)

	f.mailRepo.EXPECT().IsSent(ctx, "waitlist:w1").Return(true, nil).Once()
	ev, err = dto.ParseRowEvent([]byte(waitlistInsert))
	assert.NoError(t, err)
	res = f.d.Dispatch(ctx, ev)
	assert.Equal(t, "Already notified", res.Message)
}

func TestDispatchUnknownTable(t *testing.T) {
	f := newFixture(t)
	res := f.d.Dispatch(context.Background(), &dto.RowEvent{Type: "INSERT", Table: "orders", Record: []byte(`{}`)})
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestContactTriggerNumericId(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "contact_messages:42").Return(false, nil).Once()
	f.captcha.EXPECT().Verify(ctx, "token").Return(true).Once()
	f.mailer.EXPECT().SendContactNotification(ctx, "contact_messages:42", "support@pcc1.news", mock.Anything).Return(nil).Once()

	body := `{"type":"INSERT","table":"contact_messages","record":{"id":42,"name":"Ada","email":"ada@example.com","message":"Hello","hcaptcha_token":"token"}}`
	res := f.d.ContactTrigger(ctx, []byte(body))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Email sent successfully", res.Message)
}

func TestWaitlistTriggerNumericId(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	f.mailRepo.EXPECT().IsSent(ctx, "waitlist:1001").Return(true, nil).Once()

	body := `{"type":"INSERT","table":"waitlist","record":{"id":1001,"email":"a@example.com","product_id":"p","hcaptcha_token":"t"}}`
	res := f.d.WaitlistTrigger(ctx, []byte(body))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Already notified", res.Message)
}

func TestParseRecordIdForms(t *testing.T) {
	for _, tt := range []struct{ raw, want string }{
		{`{"id":"c1"}`, "c1"},
		{`{"id":42}`, "42"},
		{`{"id":9007199254740993}`, "9007199254740993"},
		{`{"id":null}`, ""},
		{`{}`, ""},
	} {
		rec, err := dto.ParseContactRecord([]byte(tt.raw))
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, rec.Id.String(), tt.raw)
	}

	_, err := dto.ParseContactRecord([]byte(`{"id":{"nested":true}}`))
	assert.Error(t, err)
}

func TestEventTriggerConfigErrorBeforeParsing(t *testing.T) {
	f := newFixture(t)
	f.captcha.EXPECT().Ready().Return(nil)
	f.mailer.EXPECT().Ready().Return(gerr.ErrMissingConfig)

	res := f.d.EventTrigger(context.Background(), []byte(`{not json`))
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, "Server configuration error", res.Message)
}

func TestEventTrigger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ready()

	res := f.d.EventTrigger(ctx, []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Bad Request", res.Message)

	f.mailRepo.EXPECT().IsSent(ctx, "contact_messages:c1").Return(true, nil).Once()
	res = f.d.EventTrigger(ctx, []byte(contactInsert))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Already notified", res.Message)
}
