package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	ErrorText string            `json:"error"`            // user-level message
	Fields    map[string]string `json:"fields,omitempty"` // per field validation messages
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrInvalidRequest reports a body that failed to decode or validate.
func ErrInvalidRequest(err error) render.Renderer {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusBadRequest,
			ErrorText:      ve.Message,
			Fields:         ve.Fields,
		}
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      "Invalid request body",
	}
}

func ErrConflict(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		ErrorText:      err.Error(),
	}
}

func ErrTooManyRequests(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusTooManyRequests,
		ErrorText:      err.Error(),
	}
}

func ErrUnauthorized(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		ErrorText:      http.StatusText(http.StatusUnauthorized),
	}
}

// ErrInternalServerError hides err from the client.
func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorText:      http.StatusText(http.StatusInternalServerError),
	}
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, ErrorText: "Resource not found."}
