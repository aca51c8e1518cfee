// Package domain contains core business entities and rules.
package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// bylineSeparator joins the author, genre and source fragments of a quote card.
const bylineSeparator = " · "

// Quote is a quotation as stored by the quote service.
// Quotes are owned by the remote service; the application only holds
// read-only snapshots.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the quotation itself.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Genre is the category the quote is filed under.
	Genre string

	// Source is where the quote comes from (book, speech, ...).
	Source string

	// CreatedAt is when the quote was added. Zero when unknown.
	CreatedAt time.Time

	// IndexKeys holds the provider's internal indexing keys. They are
	// passed through untouched and never interpreted.
	IndexKeys map[string]string
}

// Project returns the reduced view of the quote used in search results.
func (q *Quote) Project() ProjectedQuote {
	return ProjectedQuote{
		ID:        q.ID,
		Text:      q.Text,
		Author:    q.Author,
		Genre:     q.Genre,
		Source:    q.Source,
		CreatedAt: q.CreatedAt,
	}
}

// ProjectedQuote is the search-result representation of a quote, without
// indexing keys.
type ProjectedQuote struct {
	ID        string
	Text      string
	Author    string
	Genre     string
	Source    string
	CreatedAt time.Time
}

// Byline returns the author, genre and source joined by " · ".
// Absent fields are skipped so no separator is left dangling.
func (q ProjectedQuote) Byline() string {
	parts := make([]string, 0, 3)

	for _, p := range []string{q.Author, q.Genre, q.Source} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, bylineSeparator)
}

// Filter is the author/genre selection that drives a browse request.
// A blank field is unset.
type Filter struct {
	Author string
	Genre  string
}

// NewFilter builds a filter, normalising blank values to unset.
func NewFilter(author, genre string) Filter {
	return Filter{
		Author: strings.TrimSpace(author),
		Genre:  strings.TrimSpace(genre),
	}
}

// IsEmpty reports whether neither author nor genre is set.
func (f Filter) IsEmpty() bool {
	return f.Author == "" && f.Genre == ""
}

// Query encodes the filter as browse query parameters. Only set fields
// are included; limit is always present.
func (f Filter) Query(limit int) url.Values {
	q := url.Values{}
	if f.Author != "" {
		q.Set("author", f.Author)
	}

	if f.Genre != "" {
		q.Set("genre", f.Genre)
	}

	q.Set("limit", strconv.Itoa(limit))

	return q
}

// QuoteDraft is a quote submitted by a signed-in user.
type QuoteDraft struct {
	Text   string
	Author string
	Genre  string
	Source string
}

// Complete reports whether every field has non-blank content.
func (d *QuoteDraft) Complete() bool {
	for _, v := range []string{d.Text, d.Author, d.Genre, d.Source} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}

	return true
}
