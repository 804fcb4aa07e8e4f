package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type outboxStore struct {
	*MYSQLStore
}

// Outbox returns an object implementing Outbox interface
func (ms *MYSQLStore) Outbox() dependency.Outbox {
	return &outboxStore{
		MYSQLStore: ms,
	}
}

// AddEvent queues an event due immediately. Call it in the same transaction as
// the row it describes.
func (ms *outboxStore) AddEvent(ctx context.Context, ev *entity.OutboxEventInsert) (int, error) {
	query := `
	INSERT INTO outbox_event (event_type, table_name, record_id, payload, next_attempt_at, created_at)
	VALUES (:eventType, :tableName, :recordId, :payload, :now, :now)`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"eventType": ev.EventType,
		"tableName": ev.TableName,
		"recordId":  ev.RecordId,
		"payload":   string(ev.Payload),
		"now":       ms.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add outbox event: %w", err)
	}
	return id, nil
}

func (ms *outboxStore) GetDueEvents(ctx context.Context, now time.Time, limit int) ([]entity.OutboxEvent, error) {
	query := `
	SELECT * FROM outbox_event
	WHERE delivered_at IS NULL AND parked_at IS NULL AND next_attempt_at <= :now
	ORDER BY next_attempt_at, id
	LIMIT :limit`
	evs, err := QueryListNamed[entity.OutboxEvent](ctx, ms.DB(), query, map[string]any{
		"now":   now,
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get due outbox events: %w", err)
	}
	return evs, nil
}

func (ms *outboxStore) MarkDelivered(ctx context.Context, id int) error {
	query := `UPDATE outbox_event SET delivered_at = :now, attempts = attempts + 1 WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":  id,
		"now": ms.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to mark outbox event delivered: %w", err)
	}
	return nil
}

func (ms *outboxStore) ScheduleRetry(ctx context.Context, id int, nextAttemptAt time.Time, errMsg string) error {
	query := `
	UPDATE outbox_event
	SET attempts = attempts + 1, next_attempt_at = :next, last_error = :err
	WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":   id,
		"next": nextAttemptAt.UTC(),
		"err":  errMsg,
	})
	if err != nil {
		return fmt.Errorf("failed to schedule outbox retry: %w", err)
	}
	return nil
}

// Park stops retrying the event. Parked events stay for manual inspection.
func (ms *outboxStore) Park(ctx context.Context, id int, errMsg string) error {
	query := `
	UPDATE outbox_event
	SET attempts = attempts + 1, parked_at = :now, last_error = :err
	WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":  id,
		"now": ms.Now(),
		"err": errMsg,
	})
	if err != nil {
		return fmt.Errorf("failed to park outbox event: %w", err)
	}
	return nil
}

func (ms *outboxStore) GetParkedEvents(ctx context.Context, limit int, offset int) ([]entity.OutboxEvent, error) {
	query := `
	SELECT * FROM outbox_event
	WHERE parked_at IS NOT NULL
	ORDER BY parked_at DESC
	LIMIT :limit OFFSET :offset`
	evs, err := QueryListNamed[entity.OutboxEvent](ctx, ms.DB(), query, map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get parked outbox events: %w", err)
	}
	return evs, nil
}
