package form

import (
	"net/http"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pcc1news/pcc1-manager/internal/dto"
)

type NewsletterRequest struct {
	*dto.NewsletterRequest
}

func (r *NewsletterRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Email, v.Required, v.Length(3, 254), emailRule),
		v.Field(&r.Source, v.Length(0, 64)),
	)
}

// Bind implements render.Binder.
func (r *NewsletterRequest) Bind(_ *http.Request) error {
	return r.Validate()
}
