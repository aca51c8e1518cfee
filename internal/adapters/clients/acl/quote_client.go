package acl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c3devs/novamuse/internal/adapters/clients"
	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/platform/logging"
)

const (
	pathQuote   = "/quote"
	pathAuthors = "/quote/authors"
	pathGenres  = "/quote/genres"
	pathBrowse  = "/quote/browse"
)

// indexKeyNames are the single-table keys the quote service exposes.
var indexKeyNames = []string{"PK", "SK", "GSI1PK", "GSI1SK", "GSI2PK", "GSI2SK"}

// QuoteClientConfig holds dependencies for the quote client.
type QuoteClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be the quote API root (".../api").
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteClient against the NovaMuse quote API.
type QuoteClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger,
	}
}

// quoteDTO is a quote as the quote service serialises it.
type quoteDTO struct {
	QuoteID   string `json:"quoteId"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Source    string `json:"source"`
	CreatedAt string `json:"createdAt"`
	PK        string `json:"PK"`
	SK        string `json:"SK"`
	GSI1PK    string `json:"GSI1PK"`
	GSI1SK    string `json:"GSI1SK"`
	GSI2PK    string `json:"GSI2PK"`
	GSI2SK    string `json:"GSI2SK"`
}

// browseDTO wraps browse results.
type browseDTO struct {
	Items []quoteDTO `json:"items"`
}

// draftDTO is the body of a create request.
type draftDTO struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Source string `json:"source"`
}

// GetRandomQuote returns the first quote of the service's random pick.
// An empty answer is a NotFoundError.
func (c *QuoteClient) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	const op = "get random quote"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", pathQuote))

	body, err := c.Get(ctx, pathQuote, nil, op)
	if err != nil {
		return nil, err
	}

	quotes, err := DecodeResponse[[]quoteDTO](body)
	if err != nil {
		return nil, decodeFailure(c.ServiceName(), op, err)
	}

	if len(*quotes) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	quote := translateQuote(&(*quotes)[0])

	c.logger.DebugContext(ctx, "fetched random quote",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return &quote, nil
}

// ListAuthors returns the distinct author names. A null list is empty.
func (c *QuoteClient) ListAuthors(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, pathAuthors, "list authors")
}

// ListGenres returns the distinct genre names. A null list is empty.
func (c *QuoteClient) ListGenres(ctx context.Context) ([]string, error) {
	return c.listStrings(ctx, pathGenres, "list genres")
}

func (c *QuoteClient) listStrings(ctx context.Context, path, op string) ([]string, error) {
	body, err := c.Get(ctx, path, nil, op)
	if err != nil {
		return nil, err
	}

	values, err := DecodeResponse[[]string](body)
	if err != nil {
		return nil, decodeFailure(c.ServiceName(), op, err)
	}

	if *values == nil {
		return []string{}, nil
	}

	return *values, nil
}

// Browse returns at most limit quotes matching filter. Unset filter fields
// are left out of the query. A missing items list is empty.
func (c *QuoteClient) Browse(ctx context.Context, filter domain.Filter, limit int) ([]domain.Quote, error) {
	const op = "browse quotes"

	query := filter.Query(limit)
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", pathBrowse),
		slog.String("query", query.Encode()),
	)

	body, err := c.Get(ctx, pathBrowse, query, op)
	if err != nil {
		return nil, err
	}

	page, err := DecodeResponse[browseDTO](body)
	if err != nil {
		return nil, decodeFailure(c.ServiceName(), op, err)
	}

	return TranslateSlice(page.Items, func(q *quoteDTO) (domain.Quote, error) {
		return translateQuote(q), nil
	})
}

// CreateQuote submits draft on behalf of the bearer of token.
// A non-OK answer is a domain.RejectedError.
func (c *QuoteClient) CreateQuote(ctx context.Context, token string, draft domain.QuoteDraft) error {
	const op = "create quote"

	ctx = clients.WithBearerToken(ctx, token)

	err := c.Write(ctx, pathQuote, draftDTO{
		Text:   draft.Text,
		Author: draft.Author,
		Genre:  draft.Genre,
		Source: draft.Source,
	}, op)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "quote created", slog.String("author", draft.Author))

	return nil
}

// translateQuote converts the wire form to the domain form. An unparseable
// createdAt is left zero.
func translateQuote(ext *quoteDTO) domain.Quote {
	q := domain.Quote{
		ID:     ext.QuoteID,
		Text:   ext.Text,
		Author: ext.Author,
		Genre:  ext.Genre,
		Source: ext.Source,
	}

	if ext.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, ext.CreatedAt); err == nil {
			q.CreatedAt = t
		}
	}

	for i, v := range []string{ext.PK, ext.SK, ext.GSI1PK, ext.GSI1SK, ext.GSI2PK, ext.GSI2SK} {
		if v == "" {
			continue
		}

		if q.IndexKeys == nil {
			q.IndexKeys = make(map[string]string, len(indexKeyNames))
		}

		q.IndexKeys[indexKeyNames[i]] = v
	}

	return q
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.ServiceName()
}

// Check lists genres, the cheapest read the quote API offers.
// Implements ports.HealthChecker.
func (c *QuoteClient) Check(ctx context.Context) error {
	if _, err := c.ListGenres(ctx); err != nil {
		return fmt.Errorf("quote API check: %w", err)
	}

	return nil
}
