package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pcc1news/pcc1-manager/internal/dto"
)

type ContactRequest struct {
	*dto.ContactRequest
}

func (r *ContactRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Name, v.Required, v.Length(1, 255)),
		v.Field(&r.Email, v.Required, v.Length(3, 254), emailRule),
		v.Field(&r.Message, v.Required, v.Length(1, 5000)),
		v.Field(&r.HCaptchaToken, v.Required),
	)
}

// Bind implements render.Binder.
func (r *ContactRequest) Bind(_ *http.Request) error {
	return r.Validate()
}
