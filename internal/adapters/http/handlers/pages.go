package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c3devs/novamuse/internal/adapters/http/dto"
	"github.com/c3devs/novamuse/internal/adapters/http/middleware"
	"github.com/c3devs/novamuse/internal/adapters/http/views"
	"github.com/c3devs/novamuse/internal/app"
	"github.com/c3devs/novamuse/internal/app/search"
	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/platform/logging"
)

// PageHandler serves the quote pages and the JSON search endpoint.
type PageHandler struct {
	quotes *app.QuoteService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(quotes *app.QuoteService) *PageHandler {
	return &PageHandler{quotes: quotes}
}

// header builds the session header for the current request.
func header(c *gin.Context) views.Header {
	session := middleware.CurrentSession(c)

	return views.Header{
		SignedIn: session != nil,
		Email:    session.Email(),
		Path:     c.Request.URL.Path,
	}
}

// Home handles GET /: the quote of the day. A missing quote is not an error;
// the page renders without one.
func (h *PageHandler) Home(c *gin.Context) {
	session := middleware.CurrentSession(c)

	c.HTML(http.StatusOK, views.Home, views.HomePage{
		Header: header(c),
		Quote:  h.quotes.QuoteOfTheDay(c.Request.Context()),
		CanAdd: session != nil,
	})
}

// Search handles GET /search.
func (h *PageHandler) Search(c *gin.Context) {
	state := h.settle(c, true)

	c.HTML(http.StatusOK, views.Search, views.SearchPage{
		Header: header(c),
		State:  state,
	})
}

// SearchResults handles GET /search/results, the results fragment the
// search page swaps in when the selection changes.
func (h *PageHandler) SearchResults(c *gin.Context) {
	c.HTML(http.StatusOK, views.SearchResults, h.settle(c, false))
}

// SearchJSON handles GET /api/v1/search.
func (h *PageHandler) SearchJSON(c *gin.Context) {
	var query dto.SearchQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	state := h.run(c, query.Filter(), true)
	c.JSON(http.StatusOK, dto.NewSearchResponse(&state))
}

// settle runs a search view for the request's query until it has nothing
// left in flight.
func (h *PageHandler) settle(c *gin.Context, withOptions bool) search.State {
	var query dto.SearchQuery

	// A malformed query is just no selection.
	_ = c.ShouldBindQuery(&query)

	return h.run(c, query.Filter(), withOptions)
}

func (h *PageHandler) run(c *gin.Context, filter domain.Filter, withOptions bool) search.State {
	ctx := c.Request.Context()

	view := search.New(search.Config{
		Source:  h.quotes,
		Logger:  logging.FromContext(ctx),
		Context: ctx,
	})
	defer view.Unmount()

	if withOptions {
		view.Mount(ctx)
	}

	view.Select(filter)
	view.Wait()

	return view.State()
}

// NewQuote handles GET /quotes/new.
func (h *PageHandler) NewQuote(c *gin.Context) {
	c.HTML(http.StatusOK, views.AddQuote, views.AddQuotePage{Header: header(c)})
}

// AddQuote handles POST /quotes. On success the browser goes back home;
// otherwise the form is shown again with what was typed and a message.
func (h *PageHandler) AddQuote(c *gin.Context) {
	var form dto.AddQuoteForm

	bindErr := dto.BindFormAndValidate(c, &form)

	err := bindErr
	if err == nil {
		err = h.quotes.AddQuote(c.Request.Context(), middleware.CurrentSession(c), form.Draft())
	}

	if err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	status := http.StatusBadGateway
	message := app.AddQuoteMessage(err)

	switch {
	case errors.Is(bindErr, dto.ErrValidation), errors.Is(bindErr, dto.ErrBinding):
		status = http.StatusUnprocessableEntity
		message = app.MsgFieldsRequired
	case domain.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case domain.IsForbidden(err):
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(status, views.AddQuote, views.AddQuotePage{
		Header:  header(c),
		Draft:   form.Draft(),
		Message: message,
	})
}
