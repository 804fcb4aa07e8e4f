package store

import (
	"context"
	"fmt"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type subscribersStore struct {
	*MYSQLStore
}

// Subscribers returns an object implementing Subscribers interface
func (ms *MYSQLStore) Subscribers() dependency.Subscribers {
	return &subscribersStore{
		MYSQLStore: ms,
	}
}

// Subscribe inserts the subscriber and reports false when the email is
// already subscribed.
func (ms *subscribersStore) Subscribe(ctx context.Context, s *entity.SubscriberInsert) (bool, error) {
	query := `
	INSERT INTO newsletter_subscriber (email, source, metadata, created_at)
	VALUES (:email, :source, :metadata, :createdAt)`

	var metadata any
	if len(s.Metadata) > 0 {
		metadata = string(s.Metadata)
	}

	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"email":     s.Email,
		"source":    s.Source,
		"metadata":  metadata,
		"createdAt": ms.Now(),
	})
	if err != nil {
		if isErrUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to add subscriber: %w", err)
	}
	return true, nil
}
