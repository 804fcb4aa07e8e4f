package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type mailStore struct {
	*MYSQLStore
}

// Mail returns an object implementing mail interface
func (ms *MYSQLStore) Mail() dependency.Mail {
	return &mailStore{
		MYSQLStore: ms,
	}
}

// AddMail records an attempt. With an idempotency key the row is upserted, so
// a failed attempt is overwritten by its retry. A sent row is never
// downgraded back to unsent.
func (ms *mailStore) AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error) {
	query := `
	INSERT INTO sent_notification
		(idempotency_key, from_email, to_email, reply_to, subject, html, text_body, provider_id, sent, sent_at, error_msg, created_at)
	VALUES
		(:idempotencyKey, :fromEmail, :toEmail, :replyTo, :subject, :html, :textBody, :providerId, :sent, :sentAt, :errorMsg, :createdAt)
	ON DUPLICATE KEY UPDATE
		id = LAST_INSERT_ID(id),
		provider_id = IF(sent, provider_id, VALUES(provider_id)),
		sent_at = IF(sent, sent_at, VALUES(sent_at)),
		error_msg = IF(sent, error_msg, VALUES(error_msg)),
		sent = sent OR VALUES(sent)`

	now := ms.Now()
	sentAt := sql.NullTime{}
	if ser.Sent {
		sentAt = sql.NullTime{Time: now, Valid: true}
	}

	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"idempotencyKey": ser.IdempotencyKey,
		"fromEmail":      ser.From,
		"toEmail":        ser.To,
		"replyTo":        ser.ReplyTo,
		"subject":        ser.Subject,
		"html":           ser.Html,
		"textBody":       ser.Text,
		"providerId":     ser.ProviderId,
		"sent":           ser.Sent,
		"sentAt":         sentAt,
		"errorMsg":       ser.ErrMsg,
		"createdAt":      now,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add mail: %w", err)
	}

	return id, nil
}

func (ms *mailStore) IsSent(ctx context.Context, idempotencyKey string) (bool, error) {
	query := `SELECT COUNT(*) FROM sent_notification WHERE idempotency_key = :key AND sent = true`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"key": idempotencyKey,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check sent notification: %w", err)
	}
	return n > 0, nil
}
