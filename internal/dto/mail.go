package dto

import (
	"time"
)

// WaitlistConfirmation is the data rendered into the waitlist confirmation email.
type WaitlistConfirmation struct {
	Preheader    string
	ProductName  string
	Quantity     int
	ReferralLink string
	SiteURL      string
	Year         int
}

// ShowQuantity reports whether the quantity sentence belongs in the email.
func (w *WaitlistConfirmation) ShowQuantity() bool {
	return w.Quantity > 1
}

// ContactNotification is the data rendered into the support mailbox email.
type ContactNotification struct {
	Name       string
	Email      string
	Message    string
	ReceivedAt string
}

// ReferralLink builds the shareable link for a referral code.
func ReferralLink(shopBaseURL, referralCode string) string {
	return shopBaseURL + "?ref=" + referralCode
}

func WaitlistRecordToConfirmation(rec *WaitlistRecord, shopBaseURL, siteURL, productName string, now time.Time) *WaitlistConfirmation {
	return &WaitlistConfirmation{
		Preheader:    "YOU'RE ON THE " + productName + " WAITLIST",
		ProductName:  productName,
		Quantity:     rec.QuantityInterested,
		ReferralLink: ReferralLink(shopBaseURL, rec.ReferralCode),
		SiteURL:      siteURL,
		Year:         now.Year(),
	}
}

func ContactRecordToNotification(rec *ContactRecord, now time.Time) *ContactNotification {
	receivedAt := now
	if t, ok := ParseRecordTime(rec.CreatedAt); ok {
		receivedAt = t
	}
	return &ContactNotification{
		Name:       rec.Name,
		Email:      rec.Email,
		Message:    rec.Message,
		ReceivedAt: receivedAt.UTC().Format("Jan 2, 2006 15:04 MST"),
	}
}
