package httpapi

import (
	"crypto/subtle"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/notify"
)

const maxHookBody = 1 << 20

// hookAuth requires the shared secret, when one is configured, either as
// X-Hook-Secret or as a bearer token.
func (s *Server) hookAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.c.HookSecret == "" {
			next.ServeHTTP(w, r)
			return
		}
		got := r.Header.Get("X-Hook-Secret")
		if got == "" {
			got = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.c.HookSecret)) != 1 {
			slog.Default().WarnContext(r.Context(), "hook rejected: bad secret",
				slog.String("path", r.URL.Path),
			)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeResult(w http.ResponseWriter, res dto.DispatchResult) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(res.Status)
	_, _ = io.WriteString(w, res.Message)
}

func readHookBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxHookBody))
	if err != nil {
		slog.Default().WarnContext(r.Context(), "can't read hook body",
			slog.String("err", err.Error()),
		)
		writeResult(w, notify.OutcomeBadRequest.Result())
		return nil, false
	}
	return body, true
}

func (s *Server) waitlistHook(w http.ResponseWriter, r *http.Request) {
	body, ok := readHookBody(w, r)
	if !ok {
		return
	}
	writeResult(w, s.d.Dispatcher.WaitlistTrigger(r.Context(), body))
}

func (s *Server) contactHook(w http.ResponseWriter, r *http.Request) {
	body, ok := readHookBody(w, r)
	if !ok {
		return
	}
	writeResult(w, s.d.Dispatcher.ContactTrigger(r.Context(), body))
}

// eventHook accepts a row event for any table and routes it by table name.
func (s *Server) eventHook(w http.ResponseWriter, r *http.Request) {
	body, ok := readHookBody(w, r)
	if !ok {
		return
	}
	writeResult(w, s.d.Dispatcher.EventTrigger(r.Context(), body))
}
