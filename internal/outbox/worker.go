package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	"github.com/pcc1news/pcc1-manager/internal/metrics"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.ProcessDue(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't process outbox events",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// ProcessDue delivers one batch of due events and returns how many were
// handled.
func (w *Worker) ProcessDue(ctx context.Context) (int, error) {
	evs, err := w.outbox.GetDueEvents(ctx, w.now(), w.c.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("can't get due outbox events: %w", err)
	}

	for i := range evs {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := w.deliver(ctx, &evs[i]); err != nil {
			slog.Default().ErrorContext(ctx, "can't update outbox event",
				slog.String("err", err.Error()),
				slog.Int("event_id", evs[i].Id),
			)
		}
	}
	return len(evs), nil
}

func (w *Worker) deliver(ctx context.Context, ev *entity.OutboxEvent) error {
	res := w.dispatcher.Dispatch(ctx, &dto.RowEvent{
		Type:   ev.EventType,
		Table:  ev.TableName,
		Record: ev.Payload,
	})

	if res.Acked() {
		metrics.OutboxDeliveries.WithLabelValues(ev.TableName, "delivered").Inc()
		return w.outbox.MarkDelivered(ctx, ev.Id)
	}

	errMsg := fmt.Sprintf("%d %s", res.Status, res.Message)
	attempts := ev.Attempts + 1
	if attempts >= w.c.MaxAttempts {
		metrics.OutboxDeliveries.WithLabelValues(ev.TableName, "parked").Inc()
		slog.Default().ErrorContext(ctx, "parking outbox event",
			slog.Int("event_id", ev.Id),
			slog.String("table", ev.TableName),
			slog.String("record_id", ev.RecordId),
			slog.Int("attempts", attempts),
			slog.String("last_error", errMsg),
		)
		return w.outbox.Park(ctx, ev.Id, errMsg)
	}

	next := w.now().Add(w.retryDelay(attempts))
	metrics.OutboxDeliveries.WithLabelValues(ev.TableName, "retry").Inc()
	slog.Default().WarnContext(ctx, "outbox event delivery failed, retrying",
		slog.Int("event_id", ev.Id),
		slog.String("table", ev.TableName),
		slog.Int("attempts", attempts),
		slog.Time("next_attempt_at", next),
		slog.String("err", errMsg),
	)
	return w.outbox.ScheduleRetry(ctx, ev.Id, next, errMsg)
}
