package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/pcc1news/pcc1-manager/internal/form"
	mw "github.com/pcc1news/pcc1-manager/internal/middleware"
	"golang.org/x/sync/errgroup"
)

const alreadySubscribed = "Already subscribed"

func (s *Server) joinWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := &form.JoinWaitlistRequest{JoinWaitlistRequest: &dto.JoinWaitlistRequest{}}
	if err := render.Bind(r, data); err != nil {
		slog.Default().WarnContext(ctx, "invalid waitlist request",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	e := dto.JoinWaitlistRequestToEntity(data.JoinWaitlistRequest)

	if s.d.Limiter != nil {
		if err := s.d.Limiter.CheckWaitlist(mw.GetClientIP(ctx), e.Email); err != nil {
			render.Render(w, r, ErrTooManyRequests(err))
			return
		}
	}

	joined, err := s.d.Waitlist.Join(ctx, e)
	if err != nil {
		if errors.Is(err, gerr.ErrAlreadyOnWaitlist) {
			render.Render(w, r, ErrConflict(gerr.ErrAlreadyOnWaitlist))
			return
		}
		slog.Default().ErrorContext(ctx, "can't join waitlist",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, dto.WaitlistJoinedToResponse(joined))
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := &form.ContactRequest{ContactRequest: &dto.ContactRequest{}}
	if err := render.Bind(r, data); err != nil {
		slog.Default().WarnContext(ctx, "invalid contact request",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	m := dto.ContactRequestToEntity(data.ContactRequest)

	if s.d.Limiter != nil {
		if err := s.d.Limiter.CheckContact(mw.GetClientIP(ctx), strings.ToLower(m.Email)); err != nil {
			render.Render(w, r, ErrTooManyRequests(err))
			return
		}
	}

	msg, err := s.d.Waitlist.SubmitContact(ctx, m)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't submit contact message",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &dto.ContactResponse{Id: msg.Id})
}

func (s *Server) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := &form.NewsletterRequest{NewsletterRequest: &dto.NewsletterRequest{}}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if s.d.Limiter != nil {
		if err := s.d.Limiter.CheckNewsletter(mw.GetClientIP(ctx)); err != nil {
			render.Render(w, r, ErrTooManyRequests(err))
			return
		}
	}

	sub, err := newsletterRequestToEntity(data.NewsletterRequest)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	added, err := s.d.Waitlist.Subscribe(ctx, sub)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't subscribe to newsletter",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	resp := &dto.NewsletterResponse{Success: true}
	if !added {
		resp.Message = alreadySubscribed
	}
	render.JSON(w, r, resp)
}

func newsletterRequestToEntity(req *dto.NewsletterRequest) (*entity.SubscriberInsert, error) {
	sub := &entity.SubscriberInsert{
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if src := strings.TrimSpace(req.Source); src != "" {
		sub.Source.String = src
		sub.Source.Valid = true
	}
	if len(req.Metadata) > 0 {
		md, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, err
		}
		sub.Metadata = md
	}
	return sub, nil
}

func (s *Server) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.d.Limiter != nil {
		if err := s.d.Limiter.CheckCheckout(mw.GetClientIP(ctx)); err != nil {
			render.Render(w, r, ErrTooManyRequests(err))
			return
		}
	}

	url, err := s.d.Checkout.CreateCheckoutSession(ctx, r.Header.Get("Origin"))
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create checkout session",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusInternalServerError,
			ErrorText:      err.Error(),
		})
		return
	}

	render.JSON(w, r, &dto.CheckoutSessionResponse{URL: url})
}

func (s *Server) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	posts, err := s.d.Repo.Content().ListBlogPosts(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list blog posts",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityBlogPostPreviewsToDto(posts))
}

func (s *Server) getBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	post, err := s.d.Repo.Content().GetBlogPostBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, gerr.ErrNotFound) {
			render.Render(w, r, ErrNotFound)
			return
		}
		slog.Default().ErrorContext(ctx, "can't get blog post",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityBlogPostToDto(post))
}

func (s *Server) listResearchPapers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	papers, err := s.d.Repo.Content().ListResearchPapers(ctx, r.URL.Query().Get("category"))
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list research papers",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.EntityResearchPapersToDto(papers))
}

// getFeed loads posts and papers concurrently.
func (s *Server) getFeed(w http.ResponseWriter, r *http.Request) {
	var (
		posts  []entity.BlogPostPreview
		papers []entity.ResearchPaper
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		posts, err = s.d.Repo.Content().ListBlogPosts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		papers, err = s.d.Repo.Content().ListResearchPapers(ctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't load feed",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	render.JSON(w, r, &dto.Feed{
		Posts:  dto.EntityBlogPostPreviewsToDto(posts),
		Papers: dto.EntityResearchPapersToDto(papers),
	})
}
