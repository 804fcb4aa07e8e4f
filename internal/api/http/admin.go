package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// authenticator rejects requests whose token failed jwtauth.Verifier.
func authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			slog.Default().WarnContext(r.Context(), "admin request unauthorized",
				slog.String("err", err.Error()),
			)
			render.Render(w, r, ErrUnauthorized(err))
			return
		}
		if token == nil {
			render.Render(w, r, ErrUnauthorized(fmt.Errorf("no token")))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// pagination reads limit and offset, falling back to defaults on bad input.
func pagination(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *Server) listWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := pagination(r)
	entries, err := s.d.Repo.Waitlist().GetWaitlistEntriesPaged(ctx, r.URL.Query().Get("product_id"), limit, offset)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list waitlist entries",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityWaitlistEntriesToAdmin(entries))
}

// getWaitlistEntry returns a single entry with its current queue position.
func (s *Server) getWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	e, err := s.d.Repo.Waitlist().GetWaitlistEntryById(ctx, id)
	if err != nil {
		if errors.Is(err, gerr.ErrNotFound) {
			render.Render(w, r, ErrNotFound)
			return
		}
		slog.Default().ErrorContext(ctx, "can't get waitlist entry",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	position, err := s.d.Repo.Waitlist().GetPosition(ctx, e.ProductId, e.CreatedAt)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get waitlist position",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityWaitlistEntryToAdmin(e, position))
}

func (s *Server) listContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := pagination(r)
	msgs, err := s.d.Repo.Contact().GetContactMessagesPaged(ctx, limit, offset)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list contact messages",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityContactMessagesToAdmin(msgs))
}

func (s *Server) listParkedEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := pagination(r)
	events, err := s.d.Repo.Outbox().GetParkedEvents(ctx, limit, offset)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list parked outbox events",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityOutboxEventsToAdmin(events))
}
