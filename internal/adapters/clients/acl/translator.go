package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/c3devs/novamuse/internal/adapters/clients"
	"github.com/c3devs/novamuse/internal/domain"
)

// maxErrorBody bounds how much of an error body is read for context.
const maxErrorBody = 4 << 10

// BaseAdapter wraps the instrumented client and turns every failure into
// a domain error. Service-specific adapters embed it.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a read and returns the body of a 2xx answer (caller closes).
// Failures are mapped with MapHTTPError.
func (a *BaseAdapter) Get(ctx context.Context, path string, query url.Values, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path, query)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, "")
	}

	if !ok(resp.StatusCode) {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation, "")
	}

	return resp.Body, nil
}

// Write sends payload as JSON and discards the answer body.
// Any non-2xx answer is a domain.RejectedError; transport failures are
// domain.UnavailableError.
func (a *BaseAdapter) Write(ctx context.Context, path string, payload any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", operation, err)
	}

	resp, err := a.client.Post(ctx, path, body)
	if err != nil {
		return mapClientError(err, a.serviceName, operation)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp.StatusCode) {
		return MapWriteError(resp, a.serviceName, operation)
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	return nil
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// Translator converts one external DTO into a domain value.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies translate to every item, stopping at the first error.
// A nil slice translates to an empty one.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// decodeFailure reports a 2xx answer whose body could not be understood.
func decodeFailure(serviceName, operation string, err error) error {
	return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: %v", operation, err))
}

func ok(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
