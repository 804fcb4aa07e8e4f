package gerr

import "errors"

var (
	ErrAlreadyOnWaitlist = errors.New("email already on the waitlist for this product")
	ErrNotFound          = errors.New("not found")
	ErrRateLimited       = errors.New("too many requests")
	ErrCheckoutDisabled  = errors.New("checkout is not configured")
	ErrMissingConfig     = errors.New("missing required configuration")
	MailSendFailed       = errors.New("mail provider rejected the request")
	BadMailRequest       = errors.New("bad mail request")
)
