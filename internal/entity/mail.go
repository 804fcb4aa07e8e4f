package entity

import (
	"database/sql"
	"time"
)

// SendEmailRequest is a single outbound email attempt. Rows double as the
// idempotency record: a sent row for a key means the notification went out.
type SendEmailRequest struct {
	Id             int            `db:"id"`
	IdempotencyKey sql.NullString `db:"idempotency_key"`
	From           string         `db:"from_email"`
	To             string         `db:"to_email"`
	ReplyTo        string         `db:"reply_to"`
	Subject        string         `db:"subject"`
	Html           string         `db:"html"`
	Text           string         `db:"text_body"`
	ProviderId     sql.NullString `db:"provider_id"`
	Sent           bool           `db:"sent"`
	SentAt         sql.NullTime   `db:"sent_at"`
	CreatedAt      time.Time      `db:"created_at"`
	ErrMsg         sql.NullString `db:"error_msg"`
}
