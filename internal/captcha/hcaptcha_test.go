package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("secret"))
		assert.Equal(t, "token", r.PostForm.Get("response"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{name: "accepted", status: http.StatusOK, body: `{"success":true}`, want: true},
		{name: "rejected", status: http.StatusOK, body: `{"success":false,"error-codes":["invalid-input-response"]}`, want: false},
		{name: "server error", status: http.StatusInternalServerError, body: `{"success":true}`, want: false},
		{name: "malformed", status: http.StatusOK, body: `not json`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := newServer(t, tt.status, tt.body, &calls)
			v := New(&Config{SecretKey: "secret", VerifyURL: srv.URL})
			assert.Equal(t, tt.want, v.Verify(context.Background(), "token"))
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	var calls int32
	srv := newServer(t, http.StatusOK, `{"success":true}`, &calls)
	v := New(&Config{SecretKey: "secret", VerifyURL: srv.URL})
	assert.False(t, v.Verify(context.Background(), ""))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestVerifyMissingSecret(t *testing.T) {
	var calls int32
	srv := newServer(t, http.StatusOK, `{"success":true}`, &calls)
	v := New(&Config{VerifyURL: srv.URL})
	assert.Error(t, v.Ready())
	assert.False(t, v.Verify(context.Background(), "token"))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestVerifyUnreachable(t *testing.T) {
	v := New(&Config{SecretKey: "secret", VerifyURL: "http://127.0.0.1:1"})
	assert.False(t, v.Verify(context.Background(), "token"))
}

func TestDefaultURL(t *testing.T) {
	v := New(&Config{SecretKey: "secret"})
	assert.Equal(t, DefaultVerifyURL, v.c.VerifyURL)
	assert.NoError(t, v.Ready())
}
