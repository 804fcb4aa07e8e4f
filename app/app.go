package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pcc1news/pcc1-manager/config"
	httpapi "github.com/pcc1news/pcc1-manager/internal/api/http"
	"github.com/pcc1news/pcc1-manager/internal/auth/jwt"
	"github.com/pcc1news/pcc1-manager/internal/captcha"
	"github.com/pcc1news/pcc1-manager/internal/mail"
	"github.com/pcc1news/pcc1-manager/internal/notify"
	"github.com/pcc1news/pcc1-manager/internal/outbox"
	"github.com/pcc1news/pcc1-manager/internal/payment/stripe"
	"github.com/pcc1news/pcc1-manager/internal/ratelimit"
	"github.com/pcc1news/pcc1-manager/internal/store"
	"github.com/pcc1news/pcc1-manager/internal/waitlist"
)

// App is the main application
type App struct {
	c       *config.Config
	db      *store.MYSQLStore
	hs      *httpapi.Server
	ob      *outbox.Worker
	limiter *ratelimit.MultiKeyLimiter
	done    chan struct{}
	once    sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start connects to the database, builds the services and starts the http
// server and the outbox worker.
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting pcc1 manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	verifier := captcha.New(&a.c.Captcha)
	if err := verifier.Ready(); err != nil {
		slog.Default().WarnContext(ctx, "captcha verifier not configured, notifications will fail",
			slog.String("err", err.Error()),
		)
	}

	mailer, err := mail.New(&a.c.Mailer, a.db.Mail())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new mailer",
			slog.String("err", err.Error()),
		)
		return err
	}
	if err := mailer.Ready(); err != nil {
		slog.Default().WarnContext(ctx, "mailer not configured, notifications will fail",
			slog.String("err", err.Error()),
		)
	}

	dispatcher := notify.New(&a.c.Notify, verifier, mailer, a.db.Mail())

	var ja *jwtauth.JWTAuth
	if a.c.Auth.JWTSecret != "" {
		ja, err = jwt.New(a.c.Auth.JWTSecret)
		if err != nil {
			return fmt.Errorf("failed to create jwt auth: %w", err)
		}
	} else {
		slog.Default().WarnContext(ctx, "auth.jwt_secret not set, admin api disabled")
	}

	a.limiter = ratelimit.NewMultiKeyLimiter(&a.c.RateLimit)

	a.hs = httpapi.New(&a.c.HTTP, httpapi.Deps{
		Repo:       a.db,
		Waitlist:   waitlist.New(&a.c.Waitlist, a.db),
		Dispatcher: dispatcher,
		Checkout:   stripe.New(&a.c.Stripe),
		Limiter:    a.limiter,
		JWTAuth:    ja,
	})
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}
	go func() {
		<-a.hs.Done()
		a.once.Do(func() { close(a.done) })
	}()

	a.ob = outbox.New(&a.c.Outbox, a.db.Outbox(), dispatcher)
	if err = a.ob.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start outbox worker",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.ob != nil {
		if err := a.ob.Stop(); err != nil {
			slog.Default().WarnContext(ctx, "outbox worker stop",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.limiter != nil {
		a.limiter.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
