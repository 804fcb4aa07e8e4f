package outbox

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/dependency/mocks"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newWorker(t *testing.T) (*Worker, *mocks.Outbox, *mocks.Dispatcher) {
	ob := mocks.NewOutbox(t)
	d := mocks.NewDispatcher(t)
	w := New(&Config{
		BatchSize:      10,
		MaxAttempts:    3,
		InitialBackoff: time.Minute,
		MaxBackoff:     10 * time.Minute,
	}, ob, d)
	w.now = func() time.Time { return now }
	return w, ob, d
}

func event(id, attempts int) entity.OutboxEvent {
	return entity.OutboxEvent{
		Id:       id,
		Attempts: attempts,
		OutboxEventInsert: entity.OutboxEventInsert{
			EventType: entity.EventTypeInsert,
			TableName: entity.TableWaitlist,
			RecordId:  "w1",
			Payload:   []byte(`{"id":"w1"}`),
		},
	}
}

func TestProcessDueDelivered(t *testing.T) {
	ctx := context.Background()
	w, ob, d := newWorker(t)

	ob.EXPECT().GetDueEvents(ctx, now, 10).Return([]entity.OutboxEvent{event(1, 0)}, nil).Once()
	d.EXPECT().Dispatch(ctx, mock.MatchedBy(func(ev *dto.RowEvent) bool {
		return ev.Type == "INSERT" && ev.Table == "waitlist" && string(ev.Record) == `{"id":"w1"}`
	})).Return(dto.DispatchResult{Status: http.StatusOK, Message: "Invalid captcha"}).Once()
	ob.EXPECT().MarkDelivered(ctx, 1).Return(nil).Once()

	n, err := w.ProcessDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProcessDueRetry(t *testing.T) {
	ctx := context.Background()
	w, ob, d := newWorker(t)

	ob.EXPECT().GetDueEvents(ctx, now, 10).Return([]entity.OutboxEvent{event(1, 1)}, nil).Once()
	d.EXPECT().Dispatch(ctx, mock.Anything).
		Return(dto.DispatchResult{Status: http.StatusInternalServerError, Message: "Internal Server Error"}).Once()
	ob.EXPECT().ScheduleRetry(ctx, 1, now.Add(2*time.Minute), "500 Internal Server Error").Return(nil).Once()

	_, err := w.ProcessDue(ctx)
	require.NoError(t, err)
}

func TestProcessDuePark(t *testing.T) {
	ctx := context.Background()
	w, ob, d := newWorker(t)

	ob.EXPECT().GetDueEvents(ctx, now, 10).Return([]entity.OutboxEvent{event(1, 2)}, nil).Once()
	d.EXPECT().Dispatch(ctx, mock.Anything).
		Return(dto.DispatchResult{Status: http.StatusInternalServerError, Message: "Server configuration error"}).Once()
	ob.EXPECT().Park(ctx, 1, "500 Server configuration error").Return(nil).Once()

	_, err := w.ProcessDue(ctx)
	require.NoError(t, err)
}

func TestProcessDueContinuesAfterUpdateError(t *testing.T) {
	ctx := context.Background()
	w, ob, d := newWorker(t)

	ob.EXPECT().GetDueEvents(ctx, now, 10).Return([]entity.OutboxEvent{event(1, 0), event(2, 0)}, nil).Once()
	d.EXPECT().Dispatch(ctx, mock.Anything).Return(dto.DispatchResult{Status: http.StatusOK}).Twice()
	ob.EXPECT().MarkDelivered(ctx, 1).Return(errors.New("db down")).Once()
	ob.EXPECT().MarkDelivered(ctx, 2).Return(nil).Once()

	n, err := w.ProcessDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestProcessDueLoadError(t *testing.T) {
	ctx := context.Background()
	w, ob, _ := newWorker(t)

	ob.EXPECT().GetDueEvents(ctx, now, 10).Return(nil, errors.New("db down")).Once()
	_, err := w.ProcessDue(ctx)
	assert.Error(t, err)
}

func TestRetryDelay(t *testing.T) {
	w, _, _ := newWorker(t)
	assert.Equal(t, time.Minute, w.retryDelay(1))
	assert.Equal(t, 2*time.Minute, w.retryDelay(2))
	assert.Equal(t, 4*time.Minute, w.retryDelay(3))
	assert.Equal(t, 8*time.Minute, w.retryDelay(4))
	assert.Equal(t, 10*time.Minute, w.retryDelay(5))
	assert.Equal(t, 10*time.Minute, w.retryDelay(12))
}

func TestStartStop(t *testing.T) {
	w, _, _ := newWorker(t)
	w.c.WorkerInterval = time.Hour

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}
