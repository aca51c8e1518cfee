package dto

import (
	"time"

	"github.com/c3devs/novamuse/internal/app/search"
	"github.com/c3devs/novamuse/internal/domain"
)

// AddQuoteForm is the body of POST /quotes.
type AddQuoteForm struct {
	Text   string `form:"text" validate:"notempty,max=2000"`
	Author string `form:"author" validate:"notempty,max=2000"`
	Genre  string `form:"genre" validate:"notempty,max=2000"`
	Source string `form:"source" validate:"notempty,max=2000"`
}

// Draft converts the form to a domain draft.
func (f *AddQuoteForm) Draft() domain.QuoteDraft {
	return domain.QuoteDraft{
		Text:   f.Text,
		Author: f.Author,
		Genre:  f.Genre,
		Source: f.Source,
	}
}

// SearchQuery is the author/genre selection on /search, /search/results
// and /api/v1/search.
type SearchQuery struct {
	Author string `form:"author" json:"author,omitempty"`
	Genre  string `form:"genre" json:"genre,omitempty"`
}

// Filter returns the normalised domain filter.
func (q SearchQuery) Filter() domain.Filter {
	return domain.NewFilter(q.Author, q.Genre)
}

// QuoteItem is one search result.
type QuoteItem struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Author    string     `json:"author,omitempty"`
	Genre     string     `json:"genre,omitempty"`
	Source    string     `json:"source,omitempty"`
	Byline    string     `json:"byline"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// SearchResponse is the JSON snapshot of a settled search view.
type SearchResponse struct {
	Authors   []string    `json:"authors"`
	Genres    []string    `json:"genres"`
	Filter    SearchQuery `json:"filter"`
	Items     []QuoteItem `json:"items"`
	Loading   bool        `json:"loading"`
	NoResults bool        `json:"noResults"`
}

// NewSearchResponse converts a search view state.
func NewSearchResponse(state *search.State) *SearchResponse {
	items := make([]QuoteItem, 0, len(state.Results))
	for _, q := range state.Results {
		item := QuoteItem{
			ID:     q.ID,
			Text:   q.Text,
			Author: q.Author,
			Genre:  q.Genre,
			Source: q.Source,
			Byline: q.Byline(),
		}

		if !q.CreatedAt.IsZero() {
			created := q.CreatedAt
			item.CreatedAt = &created
		}

		items = append(items, item)
	}

	return &SearchResponse{
		Authors:   nonNil(state.Authors),
		Genres:    nonNil(state.Genres),
		Filter:    SearchQuery{Author: state.Filter.Author, Genre: state.Filter.Genre},
		Items:     items,
		Loading:   state.Loading,
		NoResults: state.ShowNoResults(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
