package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/fluxrouter-backend/models"
	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The error body is decoded when it has the uniform error shape; any other
// body is kept verbatim as the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Name:       http.StatusText(resp.StatusCode()),
		Message:    strings.TrimSpace(string(resp.Body())),
		sentinel:   statusSentinels[resp.StatusCode()],
	}

	var record models.ErrorRecord
	if err := json.Unmarshal(resp.Body(), &record); err == nil && record.Error != "" {
		apiErr.Name = record.Error
		apiErr.Message = record.Message
	}

	return apiErr
}
