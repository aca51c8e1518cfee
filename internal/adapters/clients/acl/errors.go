package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/c3devs/novamuse/internal/adapters/clients"
	"github.com/c3devs/novamuse/internal/domain"
)

// ErrorResponse is an error body from the quote service.
// Both the nested {"error":{"message":...}} and the flat {"message":...}
// shapes are accepted.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail contains error information from external services.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetMessage returns the error message from either format.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or carries no message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed read to a domain error.
//
//   - transport failures, open circuit, exhausted retries: UnavailableError
//   - 404: NotFoundError for entityID
//   - 401/403: ForbiddenError
//   - 400/422 and other 4xx: ValidationError
//   - 429 and 5xx: UnavailableError
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if ok(resp.StatusCode) {
		return nil
	}

	return mapStatusCode(resp.StatusCode, ParseErrorResponse(resp.Body), serviceName, operation, entityID)
}

// MapWriteError maps a non-2xx answer to a write. Whatever the status, the
// service was reached and refused, so the result is always a RejectedError
// carrying the status code. The body message, if any, is wrapped in.
func MapWriteError(resp *http.Response, serviceName, operation string) error {
	rejected := domain.NewRejectedError(serviceName, operation, resp.StatusCode)

	if errResp := ParseErrorResponse(resp.Body); errResp != nil {
		return fmt.Errorf("%w: %s", rejected, errResp.GetMessage())
	}

	return rejected
}

// mapClientError translates client-level errors to domain errors.
func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

// mapStatusCode translates HTTP status codes to domain errors.
func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, entityID string) error {
	message := fmt.Sprintf("%s failed with status %d", operation, status)
	if errResp != nil {
		message = errResp.GetMessage()
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, entityID)

	case status == http.StatusConflict:
		return domain.NewConflictError(serviceName, message)

	case status == http.StatusUnauthorized:
		return domain.NewForbiddenError(operation, "authentication required")

	case status == http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)

	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")

	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return domain.NewValidationError("", message)
	}
}
