package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/metrics"
	mw "github.com/pcc1news/pcc1-manager/internal/middleware"
	"github.com/pcc1news/pcc1-manager/internal/ratelimit"
	"github.com/pcc1news/pcc1-manager/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	HookSecret     string        `mapstructure:"hook_secret"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// Deps are the services the handlers call into.
type Deps struct {
	Repo       dependency.Repository
	Waitlist   dependency.WaitlistService
	Dispatcher dependency.Dispatcher
	Checkout   dependency.Checkout
	Limiter    *ratelimit.MultiKeyLimiter
	// JWTAuth guards /api/admin. Admin routes are not mounted when nil.
	JWTAuth *jwtauth.JWTAuth
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	d    Deps
	done chan struct{}
}

// New creates a new server
func New(c *Config, d Deps) *Server {
	return &Server{
		c:    c,
		d:    d,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the listener exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Router builds the chi router with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.ClientIdentifier)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(s.cors())
	r.Use(countRequests)

	r.Get("/health", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/frontend", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Post("/waitlist", s.joinWaitlist)
		r.Post("/contact", s.submitContact)
		r.Post("/newsletter", s.subscribeNewsletter)
		r.Post("/checkout-session", s.createCheckoutSession)
		r.Get("/blog", s.listBlogPosts)
		r.Get("/blog/{slug}", s.getBlogPost)
		r.Get("/research", s.listResearchPapers)
		r.Get("/feed", s.getFeed)
	})

	// path used by the storefront before the frontend api existed
	r.With(render.SetContentType(render.ContentTypeJSON)).
		Post("/api/checkout_sessions", s.createCheckoutSession)

	r.Route("/api/hooks", func(r chi.Router) {
		r.Use(s.hookAuth)
		r.Post("/waitlist", s.waitlistHook)
		r.Post("/contact", s.contactHook)
		r.Post("/events", s.eventHook)
	})

	if s.d.JWTAuth != nil {
		r.Route("/api/admin", func(r chi.Router) {
			r.Use(render.SetContentType(render.ContentTypeJSON))
			r.Use(jwtauth.Verifier(s.d.JWTAuth))
			r.Use(authenticator)
			r.Get("/waitlist", s.listWaitlist)
			r.Get("/waitlist/{id}", s.getWaitlistEntry)
			r.Get("/contact", s.listContactMessages)
			r.Get("/outbox/parked", s.listParkedEvents)
		})
	}

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := net.JoinHostPort(s.c.Address, s.c.Port)

	readTimeout := s.c.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 15 * time.Second
	}
	writeTimeout := s.c.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Router(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * time.Minute,
	}

	ln, err := net.Listen("tcp", listenerAddr)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", listenerAddr, err)
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "pcc1-manager listening",
			slog.String("addr", fmt.Sprintf("http://%s", ln.Addr().String())),
		)
		err := s.hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.d.Repo != nil {
		if err := s.d.Repo.Ping(r.Context()); err != nil {
			slog.Default().ErrorContext(r.Context(), "health check failed",
				slog.String("err", err.Error()),
			)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Hook-Secret"},
		MaxAge:         300,
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}

	return false
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}
