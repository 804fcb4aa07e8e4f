package entity

import (
	"database/sql"
	"time"
)

type SubscriberInsert struct {
	Email    string         `db:"email"`
	Source   sql.NullString `db:"source"`
	Metadata []byte         `db:"metadata"`
}

type Subscriber struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	SubscriberInsert
}
