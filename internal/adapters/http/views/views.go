// Package views holds the server-rendered pages. Templates are embedded in
// the binary and parsed once at startup.
package views

import (
	"embed"
	"html/template"
	"time"

	"github.com/c3devs/novamuse/internal/app/search"
	"github.com/c3devs/novamuse/internal/domain"
)

// Template names.
const (
	Home          = "home.html"
	Search        = "search.html"
	SearchResults = "results.html"
	AddQuote      = "add_quote.html"
	Error         = "error.html"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}

		return t.Format("2 Jan 2006")
	},
}

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// MustTemplates is Templates for package initialisation; it panics on a
// parse error.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Header is the session header shown on every page.
type Header struct {
	// SignedIn shows the email and the sign-out control.
	SignedIn bool

	// Email may be empty for a signed-in user whose token carried none.
	Email string

	// Path is the current request path, used to mark the active link.
	Path string
}

// HomePage is the quote of the day.
type HomePage struct {
	Header

	// Quote is nil when none could be loaded.
	Quote *domain.Quote

	// CanAdd shows the "Add quote" control.
	CanAdd bool
}

// SearchPage is the search view.
type SearchPage struct {
	Header
	search.State
}

// AddQuotePage is the add-quote form.
type AddQuotePage struct {
	Header
	Draft domain.QuoteDraft

	// Message is the outcome of the last submit, empty on first render.
	Message string
}

// SubmitDisabled reports whether the submit control starts disabled.
func (p AddQuotePage) SubmitDisabled() bool {
	return !p.Draft.Complete()
}

// ErrorPage reports a failed sign-in or an unexpected error.
type ErrorPage struct {
	Header
	Title   string
	Message string
}
