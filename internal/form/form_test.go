package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *entity.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func TestJoinWaitlistRequest(t *testing.T) {
	valid := func() *dto.JoinWaitlistRequest {
		return &dto.JoinWaitlistRequest{
			Email:         "a@example.com",
			ProductId:     "pcc1-box",
			HCaptchaToken: "token",
		}
	}

	assert.NoError(t, (&JoinWaitlistRequest{valid()}).Validate())

	r := valid()
	r.Quantity = 10
	r.Phone = "+1 (555) 010-0100"
	assert.NoError(t, (&JoinWaitlistRequest{r}).Validate())

	r = valid()
	r.Quantity = 11
	assert.Contains(t, validationFields(t, (&JoinWaitlistRequest{r}).Validate()), "quantity")

	r = valid()
	r.Quantity = -1
	assert.Contains(t, validationFields(t, (&JoinWaitlistRequest{r}).Validate()), "quantity")

	r = valid()
	r.Email = "not-an-email"
	assert.Contains(t, validationFields(t, (&JoinWaitlistRequest{r}).Validate()), "email")

	r = valid()
	r.Phone = "call me"
	assert.Contains(t, validationFields(t, (&JoinWaitlistRequest{r}).Validate()), "phone")

	fields := validationFields(t, (&JoinWaitlistRequest{&dto.JoinWaitlistRequest{}}).Validate())
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "product_id")
	assert.Contains(t, fields, "hcaptcha_token")
	assert.Equal(t, "Cannot be blank.", fields["email"])
}

func TestContactRequest(t *testing.T) {
	r := &dto.ContactRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		Message:       "Hello",
		HCaptchaToken: "token",
	}
	assert.NoError(t, (&ContactRequest{r}).Validate())

	r.Message = strings.Repeat("a", 5001)
	assert.Contains(t, validationFields(t, (&ContactRequest{r}).Validate()), "message")

	fields := validationFields(t, (&ContactRequest{&dto.ContactRequest{}}).Validate())
	assert.Len(t, fields, 4)
}

func TestNewsletterRequest(t *testing.T) {
	assert.NoError(t, (&NewsletterRequest{&dto.NewsletterRequest{Email: "a@example.com"}}).Validate())
	assert.Contains(t, validationFields(t, (&NewsletterRequest{&dto.NewsletterRequest{Email: "nope"}}).Validate()), "email")
}
