package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/auth/jwt"
	"github.com/pcc1news/pcc1-manager/internal/dependency/mocks"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/pcc1news/pcc1-manager/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	h        http.Handler
	repo     *mocks.Repository
	content  *mocks.Content
	wl       *mocks.Waitlist
	contact  *mocks.Contact
	outbox   *mocks.Outbox
	svc      *mocks.WaitlistService
	disp     *mocks.Dispatcher
	checkout *mocks.Checkout
	token    string
}

func newFixture(t *testing.T, c *Config, lc *ratelimit.Config) *fixture {
	t.Helper()
	f := &fixture{
		repo:     mocks.NewRepository(t),
		content:  mocks.NewContent(t),
		wl:       mocks.NewWaitlist(t),
		contact:  mocks.NewContact(t),
		outbox:   mocks.NewOutbox(t),
		svc:      mocks.NewWaitlistService(t),
		disp:     mocks.NewDispatcher(t),
		checkout: mocks.NewCheckout(t),
	}
	f.repo.EXPECT().Content().Return(f.content).Maybe()
	f.repo.EXPECT().Waitlist().Return(f.wl).Maybe()
	f.repo.EXPECT().Contact().Return(f.contact).Maybe()
	f.repo.EXPECT().Outbox().Return(f.outbox).Maybe()

	ja, err := jwt.New("test-secret")
	require.NoError(t, err)
	f.token, err = jwt.NewToken(ja, time.Hour, "ops")
	require.NoError(t, err)

	if c == nil {
		c = &Config{AllowedOrigins: []string{"https://pcc1.news"}}
	}
	if lc == nil {
		lc = &ratelimit.Config{WaitlistPerIP: 100, WaitlistPerEmail: 100, ContactPerIP: 100, ContactPerEmail: 100, NewsletterPerIP: 100, CheckoutPerIP: 100}
	}
	limiter := ratelimit.NewMultiKeyLimiter(lc)
	t.Cleanup(limiter.Close)

	f.h = New(c, Deps{
		Repo:       f.repo,
		Waitlist:   f.svc,
		Dispatcher: f.disp,
		Checkout:   f.checkout,
		Limiter:    limiter,
		JWTAuth:    ja,
	}).Router()
	return f
}

func (f *fixture) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func joined(id string, position int) *entity.WaitlistJoined {
	return &entity.WaitlistJoined{
		Entry: entity.WaitlistEntry{
			Id:           id,
			ReferralCode: "abcdef0123",
		},
		Position:     position,
		ReferralLink: "https://pcc1.news/shop?ref=abcdef0123",
	}
}

func TestJoinWaitlist(t *testing.T) {
	f := newFixture(t, nil, nil)

	f.svc.EXPECT().Join(mock.Anything, mock.MatchedBy(func(e *entity.WaitlistEntryInsert) bool {
		return e.Email == "a@example.com" &&
			e.ProductId == "pcc1-box" &&
			e.QuantityInterested == entity.DefaultQuantityInterested &&
			!e.Phone.Valid &&
			e.HCaptchaToken == "tok"
	})).Return(joined("w1", 3), nil).Once()

	rec := f.do(http.MethodPost, "/api/frontend/waitlist",
		`{"email":"A@Example.com","product_id":"pcc1-box","hcaptcha_token":"tok"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[dto.JoinWaitlistResponse](t, rec)
	assert.Equal(t, "w1", resp.Id)
	assert.Equal(t, 3, resp.Position)
	assert.Equal(t, "abcdef0123", resp.ReferralCode)
	assert.Equal(t, "https://pcc1.news/shop?ref=abcdef0123", resp.ReferralLink)
}

func TestJoinWaitlistValidation(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(http.MethodPost, "/api/frontend/waitlist",
		`{"email":"not-an-email","product_id":"","quantity":11}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[ErrResponse](t, rec)
	assert.Equal(t, "Validation failed", resp.ErrorText)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "product_id")
	assert.Contains(t, resp.Fields, "quantity")
	assert.Contains(t, resp.Fields, "hcaptcha_token")

	rec = f.do(http.MethodPost, "/api/frontend/waitlist", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJoinWaitlistDuplicate(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.svc.EXPECT().Join(mock.Anything, mock.Anything).Return(nil, gerr.ErrAlreadyOnWaitlist).Once()

	rec := f.do(http.MethodPost, "/api/frontend/waitlist",
		`{"email":"a@example.com","product_id":"pcc1-box","quantity":2,"hcaptcha_token":"tok"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, gerr.ErrAlreadyOnWaitlist.Error(), decode[ErrResponse](t, rec).ErrorText)
}

func TestJoinWaitlistInternalError(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.svc.EXPECT().Join(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rec := f.do(http.MethodPost, "/api/frontend/waitlist",
		`{"email":"a@example.com","product_id":"pcc1-box","hcaptcha_token":"tok"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestJoinWaitlistRateLimited(t *testing.T) {
	f := newFixture(t, nil, &ratelimit.Config{WaitlistPerIP: 1, WaitlistPerEmail: 10})
	f.svc.EXPECT().Join(mock.Anything, mock.Anything).Return(joined("w1", 1), nil).Once()

	hdr := map[string]string{"X-Forwarded-For": "203.0.113.7"}
	rec := f.do(http.MethodPost, "/api/frontend/waitlist",
		`{"email":"a@example.com","product_id":"pcc1-box","hcaptcha_token":"tok"}`, hdr)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/api/frontend/waitlist",
		`{"email":"b@example.com","product_id":"pcc1-box","hcaptcha_token":"tok"}`, hdr)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSubmitContact(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.svc.EXPECT().SubmitContact(mock.Anything, &entity.ContactMessageInsert{
		Name:          "Ada",
		Email:         "ada@example.com",
		Message:       "Hello",
		HCaptchaToken: "tok",
	}).Return(&entity.ContactMessage{Id: "c1"}, nil).Once()

	rec := f.do(http.MethodPost, "/api/frontend/contact",
		`{"name":" Ada ","email":"ada@example.com","message":"Hello","hcaptcha_token":"tok"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "c1", decode[dto.ContactResponse](t, rec).Id)

	rec = f.do(http.MethodPost, "/api/frontend/contact", `{"name":"Ada","email":"ada@example.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeNewsletter(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.svc.EXPECT().Subscribe(mock.Anything, mock.MatchedBy(func(s *entity.SubscriberInsert) bool {
		return s.Email == "new@example.com" && s.Source.String == "footer" && strings.Contains(string(s.Metadata), `"url"`)
	})).Return(true, nil).Once()
	f.svc.EXPECT().Subscribe(mock.Anything, mock.MatchedBy(func(s *entity.SubscriberInsert) bool {
		return s.Email == "old@example.com" && !s.Source.Valid && s.Metadata == nil
	})).Return(false, nil).Once()

	rec := f.do(http.MethodPost, "/api/frontend/newsletter",
		`{"email":"new@example.com","source":"footer","metadata":{"url":"https://pcc1.news/"}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.NewsletterResponse{Success: true}, decode[dto.NewsletterResponse](t, rec))

	rec = f.do(http.MethodPost, "/api/frontend/newsletter", `{"email":"old@example.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.NewsletterResponse{Success: true, Message: "Already subscribed"}, decode[dto.NewsletterResponse](t, rec))
}

func TestCreateCheckoutSession(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.checkout.EXPECT().CreateCheckoutSession(mock.Anything, "https://pcc1.news").
		Return("https://checkout.stripe.com/c/pay/cs_test", nil).Once()
	f.checkout.EXPECT().CreateCheckoutSession(mock.Anything, "").
		Return("", gerr.ErrCheckoutDisabled).Once()

	rec := f.do(http.MethodPost, "/api/frontend/checkout-session", "", map[string]string{"Origin": "https://pcc1.news"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test", decode[dto.CheckoutSessionResponse](t, rec).URL)

	rec = f.do(http.MethodPost, "/api/checkout_sessions", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, gerr.ErrCheckoutDisabled.Error(), decode[map[string]string](t, rec)["error"])
}

func TestBlog(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.content.EXPECT().ListBlogPosts(mock.Anything).Return([]entity.BlogPostPreview{
		{Id: 2, Title: "Newer", Slug: "newer"},
		{Id: 1, Title: "Older", Slug: "older"},
	}, nil).Once()
	f.content.EXPECT().GetBlogPostBySlug(mock.Anything, "older").Return(&entity.BlogPost{
		BlogPostPreview: entity.BlogPostPreview{Id: 1, Title: "Older", Slug: "older"},
		Content:         "body",
	}, nil).Once()
	f.content.EXPECT().GetBlogPostBySlug(mock.Anything, "missing").Return(nil, gerr.ErrNotFound).Once()

	rec := f.do(http.MethodGet, "/api/frontend/blog", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decode[[]dto.BlogPostPreview](t, rec)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Slug)

	rec = f.do(http.MethodGet, "/api/frontend/blog/older", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body", decode[dto.BlogPost](t, rec).Content)

	rec = f.do(http.MethodGet, "/api/frontend/blog/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResearchAndFeed(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.content.EXPECT().ListResearchPapers(mock.Anything, "clinical").Return([]entity.ResearchPaper{
		{Id: 7, Title: "Trial", Authors: "A. B."},
	}, nil).Once()
	f.content.EXPECT().ListResearchPapers(mock.Anything, "").Return([]entity.ResearchPaper{}, nil).Once()
	f.content.EXPECT().ListBlogPosts(mock.Anything).Return([]entity.BlogPostPreview{{Id: 1, Slug: "a"}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/frontend/research?category=clinical", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	papers := decode[[]dto.ResearchPaper](t, rec)
	require.Len(t, papers, 1)
	assert.Equal(t, "Trial", papers[0].Title)

	rec = f.do(http.MethodGet, "/api/frontend/feed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decode[dto.Feed](t, rec)
	assert.Len(t, feed.Posts, 1)
	assert.Empty(t, feed.Papers)
}

func TestFeedError(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.content.EXPECT().ListResearchPapers(mock.Anything, "").Return(nil, errors.New("boom")).Maybe()
	f.content.EXPECT().ListBlogPosts(mock.Anything).Return(nil, nil).Maybe()

	rec := f.do(http.MethodGet, "/api/frontend/feed", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHooks(t *testing.T) {
	f := newFixture(t, &Config{HookSecret: "s3cret"}, nil)
	body := `{"type":"INSERT","table":"waitlist","record":{"id":"w1"}}`

	rec := f.do(http.MethodPost, "/api/hooks/waitlist", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.disp.EXPECT().WaitlistTrigger(mock.Anything, []byte(body)).
		Return(dto.DispatchResult{Status: http.StatusOK, Message: "Email sent successfully"}).Once()
	rec = f.do(http.MethodPost, "/api/hooks/waitlist", body, map[string]string{"X-Hook-Secret": "s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Email sent successfully", rec.Body.String())

	f.disp.EXPECT().ContactTrigger(mock.Anything, []byte(body)).
		Return(dto.DispatchResult{Status: http.StatusInternalServerError, Message: "Server configuration error"}).Once()
	rec = f.do(http.MethodPost, "/api/hooks/contact", body, map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server configuration error", rec.Body.String())
}

func TestEventHook(t *testing.T) {
	f := newFixture(t, nil, nil)
	body := `{"type":"INSERT","table":"contact_messages","record":{"id":"c1"}}`

	f.disp.EXPECT().EventTrigger(mock.Anything, []byte(body)).
		Return(dto.DispatchResult{Status: http.StatusOK, Message: "Invalid record data"}).Once()
	rec := f.do(http.MethodPost, "/api/hooks/events", body, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Invalid record data", rec.Body.String())

	f.disp.EXPECT().EventTrigger(mock.Anything, []byte(`not json`)).
		Return(dto.DispatchResult{Status: http.StatusInternalServerError, Message: "Server configuration error"}).Once()
	rec = f.do(http.MethodPost, "/api/hooks/events", `not json`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server configuration error", rec.Body.String())
}

func TestAdmin(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(http.MethodGet, "/api/admin/waitlist", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/api/admin/waitlist", "", map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auth := map[string]string{"Authorization": "Bearer " + f.token}

	f.wl.EXPECT().GetWaitlistEntriesPaged(mock.Anything, "pcc1-box", defaultPageLimit, 10).
		Return([]entity.WaitlistEntryWithPosition{{
			WaitlistEntry: entity.WaitlistEntry{Id: "w1", WaitlistEntryInsert: entity.WaitlistEntryInsert{Email: "a@example.com", ProductId: "pcc1-box"}},
			Position:      1,
		}}, nil).Once()
	rec = f.do(http.MethodGet, "/api/admin/waitlist?product_id=pcc1-box&offset=10&limit=bad", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]dto.AdminWaitlistEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Position)

	f.contact.EXPECT().GetContactMessagesPaged(mock.Anything, maxPageLimit, 0).Return(nil, nil).Once()
	rec = f.do(http.MethodGet, "/api/admin/contact?limit=100000", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	f.outbox.EXPECT().GetParkedEvents(mock.Anything, defaultPageLimit, 0).Return([]entity.OutboxEvent{
		{Id: 4, Attempts: 8, OutboxEventInsert: entity.OutboxEventInsert{TableName: entity.TableWaitlist, RecordId: "w9"}},
	}, nil).Once()
	rec = f.do(http.MethodGet, "/api/admin/outbox/parked", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 8, decode[[]dto.AdminOutboxEvent](t, rec)[0].Attempts)
}

func TestAdminWaitlistEntry(t *testing.T) {
	f := newFixture(t, nil, nil)
	auth := map[string]string{"Authorization": "Bearer " + f.token}
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.wl.EXPECT().GetWaitlistEntryById(mock.Anything, "w1").Return(&entity.WaitlistEntry{
		Id:                  "w1",
		CreatedAt:           createdAt,
		WaitlistEntryInsert: entity.WaitlistEntryInsert{Email: "a@example.com", ProductId: "pcc1-box"},
	}, nil).Once()
	f.wl.EXPECT().GetPosition(mock.Anything, "pcc1-box", createdAt).Return(7, nil).Once()
	rec := f.do(http.MethodGet, "/api/admin/waitlist/w1", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	entry := decode[dto.AdminWaitlistEntry](t, rec)
	assert.Equal(t, "w1", entry.Id)
	assert.Equal(t, 7, entry.Position)

	f.wl.EXPECT().GetWaitlistEntryById(mock.Anything, "nope").Return(nil, gerr.ErrNotFound).Once()
	rec = f.do(http.MethodGet, "/api/admin/waitlist/nope", "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndCORS(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	f.repo.EXPECT().Ping(mock.Anything).Return(errors.New("down")).Once()

	rec := f.do(http.MethodGet, "/health", "", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = f.do(http.MethodGet, "/health", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("https://localhost:8443", nil))
	assert.True(t, isOriginAllowed("https://pcc1.news", []string{"https://pcc1.news"}))
	assert.True(t, isOriginAllowed("https://any.example", []string{"*"}))
	assert.False(t, isOriginAllowed("https://pcc1.news.evil", []string{"https://pcc1.news"}))
}
