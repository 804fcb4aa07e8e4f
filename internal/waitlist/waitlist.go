// Package waitlist implements the write path behind the site's forms.
package waitlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

type Config struct {
	ShopBaseURL string `mapstructure:"shop_base_url"`
}

type Service struct {
	c    *Config
	repo dependency.Repository
}

func New(c *Config, repo dependency.Repository) *Service {
	if c.ShopBaseURL == "" {
		c.ShopBaseURL = "https://pcc1.news/shop"
	}
	return &Service{
		c:    c,
		repo: repo,
	}
}

// Join adds the entry and queues its confirmation email in one transaction.
// The captcha token is stored as is; the notification dispatcher verifies it.
func (s *Service) Join(ctx context.Context, e *entity.WaitlistEntryInsert) (*entity.WaitlistJoined, error) {
	on, err := s.repo.Waitlist().IsOnWaitlist(ctx, e.Email, e.ProductId)
	if err != nil {
		return nil, fmt.Errorf("can't check waitlist: %w", err)
	}
	if on {
		return nil, gerr.ErrAlreadyOnWaitlist
	}

	var entry *entity.WaitlistEntry
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		entry, err = rep.Waitlist().AddWaitlistEntry(ctx, e)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(dto.WaitlistEntryToRecord(entry))
		if err != nil {
			return fmt.Errorf("can't marshal waitlist record: %w", err)
		}
		_, err = rep.Outbox().AddEvent(ctx, &entity.OutboxEventInsert{
			EventType: entity.EventTypeInsert,
			TableName: entity.TableWaitlist,
			RecordId:  entry.Id,
			Payload:   payload,
		})
		return err
	})
	if err != nil {
		if s.repo.IsErrUniqueViolation(err) {
			return nil, gerr.ErrAlreadyOnWaitlist
		}
		return nil, fmt.Errorf("can't add waitlist entry: %w", err)
	}

	position, err := s.repo.Waitlist().GetPosition(ctx, entry.ProductId, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("can't get waitlist position: %w", err)
	}

	slog.Default().InfoContext(ctx, "joined waitlist",
		slog.String("id", entry.Id),
		slog.String("product_id", entry.ProductId),
		slog.Int("position", position),
	)

	return &entity.WaitlistJoined{
		Entry:        *entry,
		Position:     position,
		ReferralLink: dto.ReferralLink(s.c.ShopBaseURL, entry.ReferralCode),
	}, nil
}

// SubmitContact stores the message and queues the support notification.
func (s *Service) SubmitContact(ctx context.Context, m *entity.ContactMessageInsert) (*entity.ContactMessage, error) {
	var msg *entity.ContactMessage
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		msg, err = rep.Contact().AddContactMessage(ctx, m)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(dto.ContactMessageToRecord(msg))
		if err != nil {
			return fmt.Errorf("can't marshal contact record: %w", err)
		}
		_, err = rep.Outbox().AddEvent(ctx, &entity.OutboxEventInsert{
			EventType: entity.EventTypeInsert,
			TableName: entity.TableContactMessages,
			RecordId:  msg.Id,
			Payload:   payload,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("can't add contact message: %w", err)
	}
	return msg, nil
}

// Subscribe adds a newsletter subscriber. It reports false when the email was
// already subscribed.
func (s *Service) Subscribe(ctx context.Context, sub *entity.SubscriberInsert) (bool, error) {
	added, err := s.repo.Subscribers().Subscribe(ctx, sub)
	if err != nil {
		return false, fmt.Errorf("can't subscribe: %w", err)
	}
	return added, nil
}
