package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newQuoteService(t *testing.T) (*QuoteService, *mocks.MockQuoteClient) {
	t.Helper()

	client := mocks.NewMockQuoteClient(t)
	svc := NewQuoteService(QuoteServiceConfig{
		QuoteClient: client,
		Logger:      discardLogger(),
	})
	svc.now = func() time.Time { return epoch }

	return svc, client
}

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func signedIn() *domain.Session {
	return &domain.Session{
		ID:        "s-1",
		Identity:  domain.Identity{Email: "reader@example.com", BearerToken: "id-token"},
		CreatedAt: epoch,
		ExpiresAt: epoch.Add(time.Hour),
	}
}

func completeDraft() domain.QuoteDraft {
	return domain.QuoteDraft{Text: "Be curious.", Author: "Marie Curie", Genre: "Science", Source: "Letters"}
}

func TestNewQuoteService_PanicsWithoutQuoteClient(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_Defaults(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{QuoteClient: mocks.NewMockQuoteClient(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
	assert.Equal(t, 10, BrowseLimit, "search pages are ten quotes")
}

func TestQuoteService_QuoteOfTheDay(t *testing.T) {
	tests := []struct {
		name     string
		quote    *domain.Quote
		err      error
		expected *domain.Quote
	}{
		{
			name:     "success",
			quote:    &domain.Quote{ID: "q-1", Text: "Stay hungry.", Author: "Steve Jobs"},
			expected: &domain.Quote{ID: "q-1", Text: "Stay hungry.", Author: "Steve Jobs"},
		},
		{
			name: "empty list renders nothing",
			err:  domain.NewNotFoundError("quote", ""),
		},
		{
			name: "unavailable renders nothing",
			err:  domain.NewUnavailableError("quote-service", "timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newQuoteService(t)
			client.EXPECT().GetRandomQuote(mock.Anything).Return(tt.quote, tt.err)

			assert.Equal(t, tt.expected, svc.QuoteOfTheDay(context.Background()))
		})
	}
}

func TestQuoteService_FilterOptions(t *testing.T) {
	t.Run("both lists", func(t *testing.T) {
		svc, client := newQuoteService(t)
		client.EXPECT().ListAuthors(mock.Anything).Return([]string{"Ada Lovelace"}, nil)
		client.EXPECT().ListGenres(mock.Anything).Return([]string{"Science"}, nil)

		opts := svc.FilterOptions(context.Background())

		assert.Equal(t, []string{"Ada Lovelace"}, opts.Authors)
		assert.Equal(t, []string{"Science"}, opts.Genres)
	})

	t.Run("one failing does not affect the other", func(t *testing.T) {
		svc, client := newQuoteService(t)
		client.EXPECT().ListAuthors(mock.Anything).Return(nil, errors.New("boom"))
		client.EXPECT().ListGenres(mock.Anything).Return([]string{"Science"}, nil)

		opts := svc.FilterOptions(context.Background())

		assert.NotNil(t, opts.Authors)
		assert.Empty(t, opts.Authors)
		assert.Equal(t, []string{"Science"}, opts.Genres)
	})
}

func TestQuoteService_Browse(t *testing.T) {
	t.Run("empty filter makes no request", func(t *testing.T) {
		svc, _ := newQuoteService(t)

		got, err := svc.Browse(context.Background(), domain.NewFilter(" ", ""))

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("projects results", func(t *testing.T) {
		svc, client := newQuoteService(t)
		filter := domain.NewFilter("Ada Lovelace", "")
		client.EXPECT().Browse(mock.Anything, filter, BrowseLimit).Return([]domain.Quote{{
			ID:        "q-1",
			Text:      "t",
			Author:    "Ada Lovelace",
			IndexKeys: map[string]string{"PK": "QUOTE#q-1"},
		}}, nil)

		got, err := svc.Browse(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, []domain.ProjectedQuote{{ID: "q-1", Text: "t", Author: "Ada Lovelace"}}, got)
	})

	t.Run("errors pass through", func(t *testing.T) {
		svc, client := newQuoteService(t)
		client.EXPECT().Browse(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.NewUnavailableError("quote-service", "down"))

		_, err := svc.Browse(context.Background(), domain.NewFilter("", "Science"))

		assert.True(t, domain.IsUnavailable(err))
	})
}

func TestQuoteService_AddQuote(t *testing.T) {
	t.Run("incomplete draft is not sent", func(t *testing.T) {
		svc, _ := newQuoteService(t)
		draft := completeDraft()
		draft.Source = "  "

		err := svc.AddQuote(context.Background(), signedIn(), draft)

		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, MsgFieldsRequired, AddQuoteMessage(err))
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		svc, _ := newQuoteService(t)

		err := svc.AddQuote(context.Background(), nil, completeDraft())

		assert.True(t, domain.IsForbidden(err))
	})

	t.Run("sends bearer token once", func(t *testing.T) {
		svc, client := newQuoteService(t)
		client.EXPECT().CreateQuote(mock.Anything, "id-token", completeDraft()).Return(nil).Once()

		require.NoError(t, svc.AddQuote(context.Background(), signedIn(), completeDraft()))
	})

	t.Run("rejected", func(t *testing.T) {
		svc, client := newQuoteService(t)
		client.EXPECT().CreateQuote(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.NewRejectedError("quote-service", "create quote", 400)).Once()

		err := svc.AddQuote(context.Background(), signedIn(), completeDraft())

		assert.Equal(t, MsgAddFailed, AddQuoteMessage(err))
	})
}

func TestAddQuoteMessage(t *testing.T) {
	assert.Empty(t, AddQuoteMessage(nil))
	assert.Equal(t, MsgFieldsRequired, AddQuoteMessage(domain.NewValidationError("", "x")))
	assert.Equal(t, MsgAddFailed, AddQuoteMessage(domain.NewRejectedError("svc", "op", 500)))
	assert.Equal(t,
		"An error occurred while adding the quote: connection refused",
		AddQuoteMessage(errors.New("connection refused")),
	)
}

func TestParallelPartial_CollectsEveryResult(t *testing.T) {
	results := ParallelPartial(context.Background(),
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (int, error) { return 0, errors.New("boom") },
		func(context.Context) (int, error) { return 3, nil },
	)

	require.Len(t, results, 3)
	assert.Equal(t, 1, results[0].Value)
	assert.EqualError(t, results[1].Err, "boom")
	assert.Equal(t, 3, results[2].Value)
}
