package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/entity"
)

// RowEvent is the change notification emitted for a table row, either by the
// datastore webhook or by the outbox relay.
type RowEvent struct {
	Type      string          `json:"type"`
	Table     string          `json:"table"`
	Schema    string          `json:"schema,omitempty"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
}

// IsInsert reports whether the event is an INSERT carrying a record.
func (e *RowEvent) IsInsert() bool {
	if e == nil || e.Type != entity.EventTypeInsert {
		return false
	}
	r := bytes.TrimSpace(e.Record)
	return len(r) > 0 && !bytes.Equal(r, []byte("null"))
}

// ParseRowEvent decodes a trigger request body.
func ParseRowEvent(body []byte) (*RowEvent, error) {
	var ev RowEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("can't decode row event: %w", err)
	}
	return &ev, nil
}

// RecordId is a row id as emitted by the datastore. Both JSON strings and
// JSON numbers decode into their text form.
type RecordId string

func (id *RecordId) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = RecordId(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("record id must be a string or a number: %w", err)
	}
	*id = RecordId(n.String())
	return nil
}

func (id RecordId) String() string {
	return string(id)
}

// WaitlistRecord is the waitlist row as carried in a RowEvent.
type WaitlistRecord struct {
	Id                 RecordId `json:"id"`
	Email              string   `json:"email"`
	Phone              *string  `json:"phone"`
	ProductId          string   `json:"product_id"`
	QuantityInterested int      `json:"quantity_interested"`
	ReferralCode       string   `json:"referral_code"`
	HCaptchaToken      string   `json:"hcaptcha_token"`
	CreatedAt          string   `json:"created_at"`
}

// ContactRecord is the contact_messages row as carried in a RowEvent.
type ContactRecord struct {
	Id            RecordId `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Message       string   `json:"message"`
	HCaptchaToken string   `json:"hcaptcha_token"`
	CreatedAt     string   `json:"created_at"`
}

func ParseWaitlistRecord(raw json.RawMessage) (*WaitlistRecord, error) {
	var rec WaitlistRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("can't decode waitlist record: %w", err)
	}
	return &rec, nil
}

func ParseContactRecord(raw json.RawMessage) (*ContactRecord, error) {
	var rec ContactRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("can't decode contact record: %w", err)
	}
	return &rec, nil
}

// MissingFields lists the required waitlist fields that are empty.
func (r *WaitlistRecord) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.HCaptchaToken) == "" {
		missing = append(missing, "hcaptcha_token")
	}
	if strings.TrimSpace(r.ProductId) == "" {
		missing = append(missing, "product_id")
	}
	return missing
}

// MissingFields lists the required contact fields that are empty.
func (r *ContactRecord) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Message) == "" {
		missing = append(missing, "message")
	}
	if strings.TrimSpace(r.HCaptchaToken) == "" {
		missing = append(missing, "hcaptcha_token")
	}
	return missing
}

func WaitlistEntryToRecord(e *entity.WaitlistEntry) *WaitlistRecord {
	rec := &WaitlistRecord{
		Id:                 RecordId(e.Id),
		Email:              e.Email,
		ProductId:          e.ProductId,
		QuantityInterested: e.QuantityInterested,
		ReferralCode:       e.ReferralCode,
		HCaptchaToken:      e.HCaptchaToken,
		CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.Phone.Valid {
		rec.Phone = &e.Phone.String
	}
	return rec
}

func ContactMessageToRecord(m *entity.ContactMessage) *ContactRecord {
	return &ContactRecord{
		Id:            RecordId(m.Id),
		Name:          m.Name,
		Email:         m.Email,
		Message:       m.Message,
		HCaptchaToken: m.HCaptchaToken,
		CreatedAt:     m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

var recordTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
}

// ParseRecordTime parses the created_at formats emitted by the datastore.
func ParseRecordTime(s string) (time.Time, bool) {
	for _, layout := range recordTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DispatchResult is the acknowledgment returned to whoever delivered a RowEvent.
type DispatchResult struct {
	Status  int
	Message string
}

// Acked reports whether the delivery should be considered done.
func (r DispatchResult) Acked() bool {
	return r.Status < http.StatusInternalServerError
}
