package dto

import (
	"database/sql"
	"strings"

	"github.com/pcc1news/pcc1-manager/internal/entity"
)

// JoinWaitlistRequest is the body of POST /api/frontend/waitlist.
type JoinWaitlistRequest struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ProductId     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	HCaptchaToken string `json:"hcaptcha_token"`
}

type JoinWaitlistResponse struct {
	Id           string `json:"id"`
	Position     int    `json:"position"`
	ReferralCode string `json:"referral_code"`
	ReferralLink string `json:"referral_link"`
}

// ContactRequest is the body of POST /api/frontend/contact.
type ContactRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Message       string `json:"message"`
	HCaptchaToken string `json:"hcaptcha_token"`
}

type ContactResponse struct {
	Id string `json:"id"`
}

// NewsletterRequest is the body of POST /api/frontend/newsletter.
type NewsletterRequest struct {
	Email    string         `json:"email"`
	Source   string         `json:"source"`
	Metadata map[string]any `json:"metadata"`
}

type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

func JoinWaitlistRequestToEntity(r *JoinWaitlistRequest) *entity.WaitlistEntryInsert {
	phone := strings.TrimSpace(r.Phone)
	q := r.Quantity
	if q == 0 {
		q = entity.DefaultQuantityInterested
	}
	return &entity.WaitlistEntryInsert{
		Email:              strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:              sql.NullString{String: phone, Valid: phone != ""},
		ProductId:          strings.TrimSpace(r.ProductId),
		QuantityInterested: q,
		HCaptchaToken:      r.HCaptchaToken,
	}
}

func ContactRequestToEntity(r *ContactRequest) *entity.ContactMessageInsert {
	return &entity.ContactMessageInsert{
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		Message:       strings.TrimSpace(r.Message),
		HCaptchaToken: r.HCaptchaToken,
	}
}

func WaitlistJoinedToResponse(j *entity.WaitlistJoined) *JoinWaitlistResponse {
	return &JoinWaitlistResponse{
		Id:           j.Entry.Id,
		Position:     j.Position,
		ReferralCode: j.Entry.ReferralCode,
		ReferralLink: j.ReferralLink,
	}
}
