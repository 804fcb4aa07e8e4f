package store

import (
	"context"
	"testing"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutbox(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ob := db.Outbox()

	newEvent := func(recordId string) int {
		id, err := ob.AddEvent(ctx, &entity.OutboxEventInsert{
			EventType: entity.EventTypeInsert,
			TableName: entity.TableContactMessages,
			RecordId:  recordId,
			Payload:   []byte(`{"id":"` + recordId + `"}`),
		})
		require.NoError(t, err)
		return id
	}

	delivered := newEvent("r1")
	retried := newEvent("r2")
	parked := newEvent("r3")

	now := time.Now().UTC().Add(time.Second)
	evs, err := ob.GetDueEvents(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, evs, 3)
	assert.JSONEq(t, `{"id":"r1"}`, string(evs[0].Payload))

	require.NoError(t, ob.MarkDelivered(ctx, delivered))
	require.NoError(t, ob.ScheduleRetry(ctx, retried, now.Add(time.Hour), "provider unavailable"))
	require.NoError(t, ob.Park(ctx, parked, "gave up"))

	evs, err = ob.GetDueEvents(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, evs)

	evs, err = ob.GetDueEvents(ctx, now.Add(2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, retried, evs[0].Id)
	assert.Equal(t, 1, evs[0].Attempts)
	assert.Equal(t, "provider unavailable", evs[0].LastError.String)

	evs, err = ob.GetParkedEvents(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, parked, evs[0].Id)
	assert.True(t, evs[0].ParkedAt.Valid)
}
