package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type contactStore struct {
	*MYSQLStore
}

// Contact returns an object implementing Contact interface
func (ms *MYSQLStore) Contact() dependency.Contact {
	return &contactStore{
		MYSQLStore: ms,
	}
}

func (ms *contactStore) AddContactMessage(ctx context.Context, m *entity.ContactMessageInsert) (*entity.ContactMessage, error) {
	cm := &entity.ContactMessage{
		Id:                   uuid.NewString(),
		CreatedAt:            ms.Now(),
		ContactMessageInsert: *m,
	}

	query := `
	INSERT INTO contact_messages (id, name, email, message, hcaptcha_token, created_at)
	VALUES (:id, :name, :email, :message, :hcaptchaToken, :createdAt)`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":            cm.Id,
		"name":          cm.Name,
		"email":         cm.Email,
		"message":       cm.Message,
		"hcaptchaToken": cm.HCaptchaToken,
		"createdAt":     cm.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add contact message: %w", err)
	}
	return cm, nil
}

func (ms *contactStore) GetContactMessagesPaged(ctx context.Context, limit int, offset int) ([]entity.ContactMessage, error) {
	query := `SELECT * FROM contact_messages ORDER BY created_at DESC LIMIT :limit OFFSET :offset`
	msgs, err := QueryListNamed[entity.ContactMessage](ctx, ms.DB(), query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	return msgs, nil
}
