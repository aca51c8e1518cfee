// Package search holds the state of one search page: the author and genre
// selection, the option lists, and the results of the latest browse.
//
// Selections are synchronous. Every change that leaves at least one field
// set starts a browse on its own goroutine; clearing both fields empties
// the results without a request. Each browse carries a sequence number and
// its own context. Starting a new browse cancels the previous one, and a
// result whose sequence is no longer the latest is dropped. After Unmount
// nothing mutates the state.
package search

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/c3devs/novamuse/internal/app"
	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/platform/telemetry"
)

// Source supplies option lists and browse results. *app.QuoteService
// implements it.
type Source interface {
	FilterOptions(ctx context.Context) app.FilterOptions
	Browse(ctx context.Context, filter domain.Filter) ([]domain.ProjectedQuote, error)
}

// Config holds the view's dependencies.
type Config struct {
	Source Source
	Logger *slog.Logger

	// Meter defaults to telemetry.Meter().
	Meter metric.Meter

	// Context is the parent of browses started before Mount, or without
	// one. Defaults to context.Background().
	Context context.Context
}

// State is a snapshot of the view.
type State struct {
	Authors []string
	Genres  []string

	// OptionsLoaded is true once the option lists have settled.
	OptionsLoaded bool

	Filter  domain.Filter
	Results []domain.ProjectedQuote
	Loading bool
}

// ShowNoResults reports whether the "no results" indicator is shown:
// not loading, a filter is set, and nothing came back.
func (s State) ShowNoResults() bool {
	return !s.Loading && !s.Filter.IsEmpty() && len(s.Results) == 0
}

// ShowResults reports whether result cards are shown.
func (s State) ShowResults() bool {
	return !s.Loading && len(s.Results) > 0
}

// View is one search page's state machine. It is safe for concurrent use.
type View struct {
	source    Source
	logger    *slog.Logger
	discarded metric.Int64Counter

	mu        sync.Mutex
	state     State
	base      context.Context
	seq       uint64
	cancel    context.CancelFunc
	mounted   bool
	unmounted bool
	listeners []func(State)

	wg sync.WaitGroup
}

// New creates an unmounted view with nothing selected.
// Panics if Source is nil.
func New(cfg Config) *View {
	if cfg.Source == nil {
		panic("search: Source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	meter := cfg.Meter
	if meter == nil {
		meter = telemetry.Meter()
	}

	discarded, err := meter.Int64Counter("search.browse.discarded",
		metric.WithDescription("Browse results dropped because a newer selection superseded them"),
	)
	if err != nil {
		logger.Warn("failed to create discarded counter", slog.Any("error", err))
	}

	base := cfg.Context
	if base == nil {
		base = context.Background()
	}

	return &View{
		source:    cfg.Source,
		logger:    logger,
		discarded: discarded,
		base:      base,
		state: State{
			Authors: []string{},
			Genres:  []string{},
			Results: []domain.ProjectedQuote{},
		},
	}
}

// OnChange registers fn to receive a snapshot after every state change.
// fn runs on whichever goroutine made the change, outside the view's lock.
func (v *View) OnChange(fn func(State)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.listeners = append(v.listeners, fn)
}

// Mount loads the author and genre lists once. Browses started from now on
// derive their context from ctx. Calling Mount again does nothing.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted || v.unmounted {
		return
	}

	v.mounted = true
	v.base = ctx

	v.wg.Go(func() {
		opts := v.source.FilterOptions(ctx)

		v.update(func(s *State) bool {
			s.Authors = nonNil(opts.Authors)
			s.Genres = nonNil(opts.Genres)
			s.OptionsLoaded = true

			return true
		})
	})
}

// SelectAuthor sets the author, or clears it when blank.
func (v *View) SelectAuthor(author string) {
	v.mu.Lock()
	genre := v.state.Filter.Genre
	v.mu.Unlock()

	v.Select(domain.NewFilter(author, genre))
}

// SelectGenre sets the genre, or clears it when blank.
func (v *View) SelectGenre(genre string) {
	v.mu.Lock()
	author := v.state.Filter.Author
	v.mu.Unlock()

	v.Select(domain.NewFilter(author, genre))
}

// Select replaces both fields in one transition. An unchanged filter is a
// no-op; anything else supersedes the browse in flight.
func (v *View) Select(filter domain.Filter) {
	filter = domain.NewFilter(filter.Author, filter.Genre)

	v.mu.Lock()

	if v.unmounted || filter == v.state.Filter {
		v.mu.Unlock()
		return
	}

	v.state.Filter = filter
	v.seq++
	v.stopFetch()

	if filter.IsEmpty() {
		v.state.Results = []domain.ProjectedQuote{}
		v.state.Loading = false
		snapshot, listeners := v.snapshot(), v.listeners
		v.mu.Unlock()

		notify(listeners, snapshot)

		return
	}

	seq := v.seq
	ctx, cancel := context.WithCancel(v.base)
	v.cancel = cancel
	v.state.Loading = true
	snapshot, listeners := v.snapshot(), v.listeners

	v.mu.Unlock()

	notify(listeners, snapshot)

	v.wg.Go(func() {
		defer cancel()
		v.fetch(ctx, seq, filter)
	})
}

func (v *View) fetch(ctx context.Context, seq uint64, filter domain.Filter) {
	results, err := v.source.Browse(ctx, filter)

	applied := v.update(func(s *State) bool {
		if seq != v.seq {
			return false
		}

		if err != nil {
			v.logger.ErrorContext(ctx, "browse failed",
				slog.String("author", filter.Author),
				slog.String("genre", filter.Genre),
				slog.Any("error", err),
			)

			results = nil
		}

		s.Results = nonNil(results)
		s.Loading = false
		v.cancel = nil

		return true
	})

	if !applied && v.discarded != nil {
		v.discarded.Add(context.WithoutCancel(ctx), 1)
	}
}

// Unmount stops the view: the browse in flight is cancelled and no result
// that settles afterwards is applied.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.unmounted = true
	v.stopFetch()
}

// Wait blocks until every fetch the view started has settled.
func (v *View) Wait() {
	v.wg.Wait()
}

// State returns a snapshot of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.snapshot()
}

// update applies fn under the lock unless the view is unmounted, then
// notifies listeners if fn reported a change.
func (v *View) update(fn func(*State) bool) bool {
	v.mu.Lock()

	if v.unmounted || !fn(&v.state) {
		v.mu.Unlock()
		return false
	}

	snapshot, listeners := v.snapshot(), v.listeners
	v.mu.Unlock()

	notify(listeners, snapshot)

	return true
}

// stopFetch cancels the browse in flight. Caller holds mu.
func (v *View) stopFetch() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// snapshot copies the state. Caller holds mu.
func (v *View) snapshot() State {
	s := v.state
	s.Authors = slices.Clone(s.Authors)
	s.Genres = slices.Clone(s.Genres)
	s.Results = slices.Clone(s.Results)

	return s
}

func notify(listeners []func(State), s State) {
	for _, fn := range listeners {
		fn(s)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
