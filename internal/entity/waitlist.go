package entity

import (
	"database/sql"
	"time"
)

const (
	TableWaitlist        = "waitlist"
	TableContactMessages = "contact_messages"
)

const (
	MinQuantityInterested     = 1
	MaxQuantityInterested     = 10
	DefaultQuantityInterested = 1
)

// WaitlistEntryInsert is the part of a waitlist entry supplied by the submitter.
type WaitlistEntryInsert struct {
	Email              string         `db:"email"`
	Phone              sql.NullString `db:"phone"`
	ProductId          string         `db:"product_id"`
	QuantityInterested int            `db:"quantity_interested"`
	HCaptchaToken      string         `db:"hcaptcha_token"`
}

// WaitlistEntry represents a stored waitlist entry for a product.
type WaitlistEntry struct {
	Id           string    `db:"id"`
	ReferralCode string    `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
	WaitlistEntryInsert
}

// WaitlistEntryWithPosition is a waitlist entry with its 1-based queue position.
type WaitlistEntryWithPosition struct {
	WaitlistEntry
	Position int `db:"position"`
}

// WaitlistJoined is returned to the submitter right after the entry is written.
type WaitlistJoined struct {
	Entry        WaitlistEntry
	Position     int
	ReferralLink string
}
