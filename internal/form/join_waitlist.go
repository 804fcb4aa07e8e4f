package form

import (
	"net/http"
	"regexp"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9 ().\-]{5,31}$`)

type JoinWaitlistRequest struct {
	*dto.JoinWaitlistRequest
}

// Validate checks the submission. A zero quantity means the default of one.
func (r *JoinWaitlistRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Email, v.Required, v.Length(3, 254), emailRule),
		v.Field(&r.Phone, v.Length(0, 32), v.Match(phoneRegex)),
		v.Field(&r.ProductId, v.Required, v.Length(1, 64)),
		v.Field(&r.Quantity, v.Min(entity.MinQuantityInterested), v.Max(entity.MaxQuantityInterested)),
		v.Field(&r.HCaptchaToken, v.Required),
	)
}

// Bind implements render.Binder.
func (r *JoinWaitlistRequest) Bind(_ *http.Request) error {
	return r.Validate()
}
