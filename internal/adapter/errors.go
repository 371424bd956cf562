package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

// ServerError reports that the backend produced a response, but with a status
// the operation does not accept. Message carries the server-supplied error
// text extracted from the response body ("error" field first, then "msg"),
// and is empty when the body held neither.
//
// A ServerError is distinct from a transport error: receiving one means the
// request reached the backend and came back.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// newServerError builds a [ServerError] from a non-successful response,
// decoding the body as [models.APIError] to recover the server's error text.
// An unparseable or empty body yields an empty Message.
func newServerError(resp *resty.Response) *ServerError {
	var apiErr models.APIError
	_ = json.Unmarshal(resp.Body(), &apiErr)

	return &ServerError{
		StatusCode: resp.StatusCode(),
		Message:    apiErr.Message(),
	}
}
