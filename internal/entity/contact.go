package entity

import "time"

// ContactMessageInsert holds a contact form submission.
type ContactMessageInsert struct {
	Name          string `db:"name"`
	Email         string `db:"email"`
	Message       string `db:"message"`
	HCaptchaToken string `db:"hcaptcha_token"`
}

type ContactMessage struct {
	Id        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	ContactMessageInsert
}
