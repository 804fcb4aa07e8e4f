package entity

import (
	"database/sql"
	"time"
)

const EventTypeInsert = "INSERT"

// OutboxEventInsert is a row change queued for asynchronous delivery.
type OutboxEventInsert struct {
	EventType string `db:"event_type"`
	TableName string `db:"table_name"`
	RecordId  string `db:"record_id"`
	Payload   []byte `db:"payload"`
}

type OutboxEvent struct {
	Id            int            `db:"id"`
	Attempts      int            `db:"attempts"`
	NextAttemptAt time.Time      `db:"next_attempt_at"`
	DeliveredAt   sql.NullTime   `db:"delivered_at"`
	ParkedAt      sql.NullTime   `db:"parked_at"`
	LastError     sql.NullString `db:"last_error"`
	CreatedAt     time.Time      `db:"created_at"`
	OutboxEventInsert
}
