package dto

import (
	"time"

	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type AdminWaitlistEntry struct {
	Id                 string    `json:"id"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	ProductId          string    `json:"product_id"`
	QuantityInterested int       `json:"quantity_interested"`
	ReferralCode       string    `json:"referral_code"`
	Position           int       `json:"position"`
	CreatedAt          time.Time `json:"created_at"`
}

type AdminContactMessage struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminOutboxEvent struct {
	Id        int       `json:"id"`
	Table     string    `json:"table"`
	RecordId  string    `json:"record_id"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func EntityWaitlistEntriesToAdmin(es []entity.WaitlistEntryWithPosition) []AdminWaitlistEntry {
	res := make([]AdminWaitlistEntry, 0, len(es))
	for _, e := range es {
		res = append(res, AdminWaitlistEntry{
			Id:                 e.Id,
			Email:              e.Email,
			Phone:              e.Phone.String,
			ProductId:          e.ProductId,
			QuantityInterested: e.QuantityInterested,
			ReferralCode:       e.ReferralCode,
			Position:           e.Position,
			CreatedAt:          e.CreatedAt,
		})
	}
	return res
}

func EntityWaitlistEntryToAdmin(e *entity.WaitlistEntry, position int) *AdminWaitlistEntry {
	return &AdminWaitlistEntry{
		Id:                 e.Id,
		Email:              e.Email,
		Phone:              e.Phone.String,
		ProductId:          e.ProductId,
		QuantityInterested: e.QuantityInterested,
		ReferralCode:       e.ReferralCode,
		Position:           position,
		CreatedAt:          e.CreatedAt,
	}
}

func EntityContactMessagesToAdmin(ms []entity.ContactMessage) []AdminContactMessage {
	res := make([]AdminContactMessage, 0, len(ms))
	for _, m := range ms {
		res = append(res, AdminContactMessage{
			Id:        m.Id,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return res
}

func EntityOutboxEventsToAdmin(es []entity.OutboxEvent) []AdminOutboxEvent {
	res := make([]AdminOutboxEvent, 0, len(es))
	for _, e := range es {
		res = append(res, AdminOutboxEvent{
			Id:        e.Id,
			Table:     e.TableName,
			RecordId:  e.RecordId,
			Attempts:  e.Attempts,
			LastError: e.LastError.String,
			CreatedAt: e.CreatedAt,
		})
	}
	return res
}
