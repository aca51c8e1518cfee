// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/ports"
)

// Messages shown on the add-quote form.
const (
	MsgFieldsRequired = "All fields are required"
	MsgAddFailed      = "Failed to add quote"
	msgAddErrorPrefix = "An error occurred while adding the quote: "
)

// BrowseLimit is how many quotes one browse returns.
const BrowseLimit = 10

// FilterOptions are the author and genre lists offered by the search page.
// A list that failed to load is empty.
type FilterOptions struct {
	Authors []string
	Genres  []string
}

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	quoteClient ports.QuoteClient
	logger      *slog.Logger
	now         func() time.Time
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	QuoteClient ports.QuoteClient
	Logger      *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if QuoteClient is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.QuoteClient == nil {
		panic("QuoteService: QuoteClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quoteClient: cfg.QuoteClient,
		logger:      logger,
		now:         time.Now,
	}
}

// QuoteOfTheDay returns the quote for the home page, or nil when there is
// none to show. Failures are logged, never returned.
func (s *QuoteService) QuoteOfTheDay(ctx context.Context) *domain.Quote {
	quote, err := s.quoteClient.GetRandomQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch quote of the day", slog.Any("error", err))
		return nil
	}

	s.logger.DebugContext(ctx, "fetched quote of the day", slog.String("quote_id", quote.ID))

	return quote
}

// FilterOptions loads authors and genres in parallel. Each list falls back
// to empty on its own; one failing does not affect the other.
func (s *QuoteService) FilterOptions(ctx context.Context) FilterOptions {
	results := ParallelPartial(ctx, s.quoteClient.ListAuthors, s.quoteClient.ListGenres)

	opts := FilterOptions{Authors: []string{}, Genres: []string{}}

	for i, name := range []string{"authors", "genres"} {
		if results[i].Err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch filter options",
				slog.String("list", name),
				slog.Any("error", results[i].Err),
			)

			continue
		}

		if i == 0 {
			opts.Authors = results[i].Value
		} else {
			opts.Genres = results[i].Value
		}
	}

	return opts
}

// Browse returns the projected quotes matching filter. An empty filter
// returns no results without calling the quote API.
func (s *QuoteService) Browse(ctx context.Context, filter domain.Filter) ([]domain.ProjectedQuote, error) {
	if filter.IsEmpty() {
		return []domain.ProjectedQuote{}, nil
	}

	quotes, err := s.quoteClient.Browse(ctx, filter, BrowseLimit)
	if err != nil {
		return nil, err
	}

	projected := make([]domain.ProjectedQuote, 0, len(quotes))
	for i := range quotes {
		projected = append(projected, quotes[i].Project())
	}

	return projected, nil
}

// AddQuote submits draft as the signed-in user. The draft must be complete
// and the session authenticated; the create request is sent exactly once.
func (s *QuoteService) AddQuote(ctx context.Context, session *domain.Session, draft domain.QuoteDraft) error {
	if !draft.Complete() {
		return domain.NewValidationError("", MsgFieldsRequired)
	}

	if !session.Authenticated(s.now()) {
		return domain.NewForbiddenError("add quote", "sign in required")
	}

	if err := s.quoteClient.CreateQuote(ctx, session.Identity.BearerToken, draft); err != nil {
		s.logger.ErrorContext(ctx, "failed to add quote", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "quote added", slog.String("author", draft.Author))

	return nil
}

// AddQuoteMessage is the text shown on the form for an AddQuote error.
// Rejected writes get a fixed message; transport and parse failures carry
// the underlying error text.
func AddQuoteMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case domain.IsValidation(err):
		return MsgFieldsRequired
	case domain.IsRejected(err):
		return MsgAddFailed
	default:
		return msgAddErrorPrefix + err.Error()
	}
}
