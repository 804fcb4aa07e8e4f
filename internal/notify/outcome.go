package notify

import (
	"net/http"

	"github.com/pcc1news/pcc1-manager/internal/dto"
	"github.com/pcc1news/pcc1-manager/internal/metrics"
)

// Outcome is the terminal state of a single dispatch.
type Outcome string

const (
	OutcomeConfigError    Outcome = "config_error"
	OutcomeBadRequest     Outcome = "bad_request"
	OutcomeIgnored        Outcome = "ignored"
	OutcomeInvalidRecord  Outcome = "invalid_record"
	OutcomeAlreadySent    Outcome = "already_sent"
	OutcomeInvalidCaptcha Outcome = "invalid_captcha"
	OutcomeSendFailed     Outcome = "send_failed"
	OutcomeInternalError  Outcome = "internal_error"
	OutcomeSent           Outcome = "sent"
)

var outcomeResults = map[Outcome]dto.DispatchResult{
	OutcomeConfigError:    {Status: http.StatusInternalServerError, Message: "Server configuration error"},
	OutcomeBadRequest:     {Status: http.StatusBadRequest, Message: "Bad Request"},
	OutcomeIgnored:        {Status: http.StatusOK, Message: "Ignoring non-insert event"},
	OutcomeInvalidRecord:  {Status: http.StatusOK, Message: "Invalid record data"},
	OutcomeAlreadySent:    {Status: http.StatusOK, Message: "Already notified"},
	OutcomeInvalidCaptcha: {Status: http.StatusOK, Message: "Invalid captcha"},
	OutcomeSendFailed:     {Status: http.StatusOK, Message: "Email sending failed"},
	OutcomeInternalError:  {Status: http.StatusInternalServerError, Message: "Internal Server Error"},
	OutcomeSent:           {Status: http.StatusOK, Message: "Email sent successfully"},
}

// Result maps the outcome to the acknowledgment sent back to the caller.
func (o Outcome) Result() dto.DispatchResult {
	return outcomeResults[o]
}

func result(workflow string, o Outcome) dto.DispatchResult {
	metrics.DispatchOutcomes.WithLabelValues(workflow, string(o)).Inc()
	return o.Result()
}
