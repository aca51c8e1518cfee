// Package ports defines the interfaces between the application core and
// its adapters.
package ports

import (
	"context"

	"github.com/c3devs/novamuse/internal/domain"
)

// QuoteClient is the quote service as seen by the application.
// Implementations translate the remote API into domain types and map
// transport failures to domain errors.
type QuoteClient interface {
	// GetRandomQuote returns the quote of the day. It returns a NotFoundError
	// when the service answers with an empty list.
	GetRandomQuote(ctx context.Context) (*domain.Quote, error)

	// ListAuthors returns every author the service knows about.
	ListAuthors(ctx context.Context) ([]string, error)

	// ListGenres returns every genre the service knows about.
	ListGenres(ctx context.Context) ([]string, error)

	// Browse returns at most limit quotes matching filter.
	Browse(ctx context.Context, filter domain.Filter, limit int) ([]domain.Quote, error)

	// CreateQuote submits draft on behalf of the bearer of token.
	// A non-OK answer is reported as a RejectedError.
	CreateQuote(ctx context.Context, token string, draft domain.QuoteDraft) error
}
