package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

const (
	referralCodeLength   = 10
	referralCodeAttempts = 3
)

type waitlistStore struct {
	*MYSQLStore
}

// Waitlist returns an object implementing Waitlist interface
func (ms *MYSQLStore) Waitlist() dependency.Waitlist {
	return &waitlistStore{
		MYSQLStore: ms,
	}
}

// newReferralCode returns a short lowercase hex code taken from a random uuid.
func newReferralCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:referralCodeLength]
}

// isReferralCodeCollision reports a duplicate key error raised by the
// referral code index rather than by the email/product constraint.
func isReferralCodeCollision(err error) bool {
	var e *mysql.MySQLError
	if errors.As(err, &e) && e.Number == errDupEntry {
		return strings.Contains(e.Message, "referral_code")
	}
	return false
}

// AddWaitlistEntry inserts the entry and returns it with id, referral code and
// creation time filled in. A duplicate email/product pair surfaces as a unique
// violation, which callers check with IsErrUniqueViolation.
func (ms *waitlistStore) AddWaitlistEntry(ctx context.Context, e *entity.WaitlistEntryInsert) (*entity.WaitlistEntry, error) {
	query := `
	INSERT INTO waitlist
		(id, email, phone, product_id, quantity_interested, referral_code, hcaptcha_token, created_at)
	VALUES
		(:id, :email, :phone, :productId, :quantityInterested, :referralCode, :hcaptchaToken, :createdAt)`

	entry := &entity.WaitlistEntry{
		Id:                  uuid.NewString(),
		CreatedAt:           ms.Now(),
		WaitlistEntryInsert: *e,
	}

	var err error
	for i := 0; i < referralCodeAttempts; i++ {
		entry.ReferralCode = newReferralCode()
		err = ExecNamed(ctx, ms.DB(), query, map[string]any{
			"id":                 entry.Id,
			"email":              entry.Email,
			"phone":              entry.Phone,
			"productId":          entry.ProductId,
			"quantityInterested": entry.QuantityInterested,
			"referralCode":       entry.ReferralCode,
			"hcaptchaToken":      entry.HCaptchaToken,
			"createdAt":          entry.CreatedAt,
		})
		if err == nil {
			return entry, nil
		}
		if !isReferralCodeCollision(err) {
			break
		}
	}
	return nil, fmt.Errorf("failed to add waitlist entry: %w", err)
}

func (ms *waitlistStore) IsOnWaitlist(ctx context.Context, email string, productId string) (bool, error) {
	query := `SELECT COUNT(*) FROM waitlist WHERE email = :email AND product_id = :productId`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"email":     email,
		"productId": productId,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check waitlist: %w", err)
	}
	return n > 0, nil
}

// GetPosition counts the entries for the product created no later than
// createdAt. Entries sharing the same timestamp share a rank.
func (ms *waitlistStore) GetPosition(ctx context.Context, productId string, createdAt time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM waitlist WHERE product_id = :productId AND created_at <= :createdAt`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"productId": productId,
		"createdAt": createdAt,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get waitlist position: %w", err)
	}
	if n < 1 {
		return 1, nil
	}
	return int(n), nil
}

func (ms *waitlistStore) GetWaitlistEntryById(ctx context.Context, id string) (*entity.WaitlistEntry, error) {
	query := `SELECT * FROM waitlist WHERE id = :id`
	e, err := QueryNamedOne[entity.WaitlistEntry](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get waitlist entry: %w", err)
	}
	return &e, nil
}

// GetWaitlistEntriesPaged lists entries oldest first. An empty productId lists
// every product.
func (ms *waitlistStore) GetWaitlistEntriesPaged(ctx context.Context, productId string, limit int, offset int) ([]entity.WaitlistEntryWithPosition, error) {
	query := `
	SELECT
		w.*,
		(SELECT COUNT(*) FROM waitlist p
			WHERE p.product_id = w.product_id AND p.created_at <= w.created_at) AS position
	FROM waitlist w
	WHERE (:productId = '' OR w.product_id = :productId)
	ORDER BY w.product_id, w.created_at
	LIMIT :limit OFFSET :offset`

	entries, err := QueryListNamed[entity.WaitlistEntryWithPosition](ctx, ms.DB(), query, map[string]any{
		"productId": productId,
		"limit":     limit,
		"offset":    offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get waitlist entries: %w", err)
	}
	return entries, nil
}
