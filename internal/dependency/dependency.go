package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Waitlist interface {
		// AddWaitlistEntry stores a new entry, assigning its id, referral code and creation time.
		AddWaitlistEntry(ctx context.Context, e *entity.WaitlistEntryInsert) (*entity.WaitlistEntry, error)
		// IsOnWaitlist is the advisory duplicate check for an email/product pair.
		IsOnWaitlist(ctx context.Context, email string, productId string) (bool, error)
		// GetPosition returns the 1-based rank of an entry created at createdAt.
		GetPosition(ctx context.Context, productId string, createdAt time.Time) (int, error)
		GetWaitlistEntryById(ctx context.Context, id string) (*entity.WaitlistEntry, error)
		GetWaitlistEntriesPaged(ctx context.Context, productId string, limit int, offset int) ([]entity.WaitlistEntryWithPosition, error)
	}

	Contact interface {
		AddContactMessage(ctx context.Context, m *entity.ContactMessageInsert) (*entity.ContactMessage, error)
		GetContactMessagesPaged(ctx context.Context, limit int, offset int) ([]entity.ContactMessage, error)
	}

	Outbox interface {
		AddEvent(ctx context.Context, ev *entity.OutboxEventInsert) (int, error)
		// GetDueEvents returns undelivered, unparked events whose next attempt is due.
		GetDueEvents(ctx context.Context, now time.Time, limit int) ([]entity.OutboxEvent, error)
		MarkDelivered(ctx context.Context, id int) error
		ScheduleRetry(ctx context.Context, id int, nextAttemptAt time.Time, errMsg string) error
		Park(ctx context.Context, id int, errMsg string) error
		GetParkedEvents(ctx context.Context, limit int, offset int) ([]entity.OutboxEvent, error)
	}

	Mail interface {
		// AddMail records an email attempt. Attempts sharing an idempotency key overwrite each other.
		AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error)
		// IsSent reports whether a successful send was recorded for the key.
		IsSent(ctx context.Context, idempotencyKey string) (bool, error)
	}

	Subscribers interface {
		// Subscribe adds the email to the newsletter. Returns false if it was already there.
		Subscribe(ctx context.Context, s *entity.SubscriberInsert) (bool, error)
	}

	Content interface {
		ListBlogPosts(ctx context.Context) ([]entity.BlogPostPreview, error)
		GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
		ListResearchPapers(ctx context.Context, category string) ([]entity.ResearchPaper, error)
	}

	Repository interface {
		Waitlist() Waitlist
		Contact() Contact
		Outbox() Outbox
		Mail() Mail
		Subscribers() Subscribers
		Content() Content
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	CaptchaVerifier interface {
		// Verify returns true only if the verification service accepted the token.
		Verify(ctx context.Context, token string) bool
		// Ready returns an error if the verifier is missing its secret.
		Ready() error
	}

	Mailer interface {
		SendWaitlistConfirmation(ctx context.Context, idempotencyKey string, to string, details *dto.WaitlistConfirmation) error
		SendContactNotification(ctx context.Context, idempotencyKey string, to string, details *dto.ContactNotification) error
		Ready() error
	}

	// Sender delivers a rendered email through a transactional email provider.
	Sender interface {
		Send(ctx context.Context, ser *entity.SendEmailRequest) (string, error)
	}

	Dispatcher interface {
		// Dispatch routes an insert event to the workflow owning its table.
		Dispatch(ctx context.Context, ev *dto.RowEvent) dto.DispatchResult
		// EventTrigger parses a raw row event body and dispatches it.
		EventTrigger(ctx context.Context, body []byte) dto.DispatchResult
		WaitlistTrigger(ctx context.Context, body []byte) dto.DispatchResult
		ContactTrigger(ctx context.Context, body []byte) dto.DispatchResult
	}

	WaitlistService interface {
		Join(ctx context.Context, e *entity.WaitlistEntryInsert) (*entity.WaitlistJoined, error)
		SubmitContact(ctx context.Context, m *entity.ContactMessageInsert) (*entity.ContactMessage, error)
		Subscribe(ctx context.Context, s *entity.SubscriberInsert) (bool, error)
	}

	Checkout interface {
		CreateCheckoutSession(ctx context.Context, origin string) (string, error)
	}
)
