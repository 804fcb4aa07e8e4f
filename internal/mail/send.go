package mail

import (
	"context"
	"fmt"

	"github.com/pcc1news/pcc1-manager/internal/dto"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

type templateName string

const (
	WaitlistConfirmation templateName = "waitlist_confirmation"
	ContactNotification  templateName = "contact_notification"
)

var templateSubjects = map[templateName]string{
	WaitlistConfirmation: "You're on the PCC1 waitlist! 🎉",
	ContactNotification:  "New Contact Message from PCC1.news: %s",
}

// SendWaitlistConfirmation sends the welcome email with the referral link.
func (m *Mailer) SendWaitlistConfirmation(ctx context.Context, idempotencyKey string, to string, details *dto.WaitlistConfirmation) error {
	if details.ReferralLink == "" {
		return fmt.Errorf("%w: missing referral link", gerr.BadMailRequest)
	}
	ser, err := m.buildSendMailRequest(idempotencyKey, to, WaitlistConfirmation, templateSubjects[WaitlistConfirmation], details)
	if err != nil {
		return err
	}
	return m.send(ctx, WaitlistConfirmation, ser)
}

// SendContactNotification forwards a contact message to the support mailbox.
// Replies go to the submitter.
func (m *Mailer) SendContactNotification(ctx context.Context, idempotencyKey string, to string, details *dto.ContactNotification) error {
	subject := fmt.Sprintf(templateSubjects[ContactNotification], details.Name)
	ser, err := m.buildSendMailRequest(idempotencyKey, to, ContactNotification, subject, details)
	if err != nil {
		return err
	}
	ser.ReplyTo = details.Email
	return m.send(ctx, ContactNotification, ser)
}
