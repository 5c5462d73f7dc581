package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DebounceWindow is the trailing-edge delay applied to filter edits before a
// fresh first-page load is issued.
const DebounceWindow = 300 * time.Millisecond

// RecentCount is how many leading items of the current list carry the
// "new" badge.
const RecentCount = 5

// Store is the browse state of one catalog page (one tier). Filter edits are
// debounced into replacing first-page loads; LoadMore appends the next page.
// All mutable state has a single owner: the store itself, behind one mutex.
type Store struct {
	client *Client
	tier   Tier
	logger *zap.Logger

	mu          sync.Mutex
	state       QueryState // filter fields only; Page tracked separately
	items       []ContentItem
	facets      []CategoryFacet
	currentPage int
	totalPages  int
	loading     bool
	loadingMore bool
	loaded      bool // first page has completed at least once

	// refreshPending is set while a filter edit waits out the debounce
	// window; LoadMore must not mix the new filters with the old cursor.
	refreshPending bool

	// gen invalidates in-flight results: any load whose generation no longer
	// matches is dropped, so a filter-triggered reset always wins.
	gen int

	debounce time.Duration
	timer    *time.Timer
	closed   bool
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithDebounce overrides the filter debounce window.
func WithDebounce(d time.Duration) StoreOption {
	return func(s *Store) { s.debounce = d }
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store for one tier. Call Refresh (or any filter setter)
// to load the first page.
func NewStore(client *Client, tier Tier, opts ...StoreOption) *Store {
	s := &Store{
		client:   client,
		tier:     tier,
		logger:   zap.NewNop(),
		debounce: DebounceWindow,
		state:    QueryState{Sort: SortMostRecent},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close cancels any pending debounced load.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SetSearch updates the search text and schedules a debounced reload.
func (s *Store) SetSearch(v string) {
	s.editFilter(func(q *QueryState) { q.Search = v })
}

// SetMonth updates the month filter and schedules a debounced reload.
func (s *Store) SetMonth(v string) {
	s.editFilter(func(q *QueryState) { q.Month = v })
}

// SetCategory updates the category filter and schedules a debounced reload.
func (s *Store) SetCategory(v string) {
	s.editFilter(func(q *QueryState) { q.Category = v })
}

// SetSort updates the sort option and schedules a debounced reload.
func (s *Store) SetSort(v SortOption) {
	s.editFilter(func(q *QueryState) { q.Sort = v })
}

// editFilter applies a mutation and restarts the debounce timer, so only the
// trailing edit within the window fires a request.
func (s *Store) editFilter(apply func(*QueryState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	apply(&s.state)

	// Any filter change invalidates in-flight results immediately; a pending
	// load-more result must not land on the reset list.
	s.gen++
	s.refreshPending = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.Refresh)
}

// Refresh issues a first-page load with the current filters right away,
// cancelling any pending debounced load. The result replaces the held list
// and facets.
func (s *Store) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.refreshPending = false
	gen := s.gen
	s.loading = true
	q := s.state.WithPage(1)
	s.mu.Unlock()

	go s.fetchFirst(gen, q)
}

func (s *Store) fetchFirst(gen int, q QueryState) {
	env, err := s.client.Search(context.Background(), s.tier, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return // superseded; the newer load owns the flags
	}
	s.loading = false
	if err != nil {
		s.logger.Error("catalog first page load failed",
			zap.String("tier", string(s.tier)), zap.Error(err))
		return
	}

	s.items = env.Data
	s.facets = MergeFacets(nil, ItemCategories(env.Data))
	s.currentPage = 1
	s.totalPages = env.TotalPages
	s.loaded = true
}

// LoadMore requests the next page and appends it. It is a no-op when a load
// is already in flight, the first page has not loaded, or no pages remain.
// It reports whether a request was issued.
func (s *Store) LoadMore() bool {
	s.mu.Lock()
	if s.closed || s.loading || s.loadingMore || s.refreshPending || !s.loaded || s.currentPage >= s.totalPages {
		s.mu.Unlock()
		return false
	}
	s.loadingMore = true
	gen := s.gen
	q := s.state.WithPage(s.currentPage + 1)
	s.mu.Unlock()

	go s.fetchMore(gen, q)
	return true
}

func (s *Store) fetchMore(gen int, q QueryState) {
	env, err := s.client.Search(context.Background(), s.tier, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingMore = false
	if gen != s.gen {
		return // filters changed while in flight; discard
	}
	if err != nil {
		s.logger.Error("catalog load more failed",
			zap.String("tier", string(s.tier)),
			zap.Int("page", q.Page), zap.Error(err))
		return
	}

	s.items = append(s.items, env.Data...)
	s.facets = MergeFacets(s.facets, ItemCategories(env.Data))
	s.currentPage = q.Page
	s.totalPages = env.TotalPages
}

// Items returns a snapshot of the accumulated result list.
func (s *Store) Items() []ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ContentItem, len(s.items))
	copy(out, s.items)
	return out
}

// Cards returns render view-models for the current list; the first
// RecentCount items carry the new badge.
func (s *Store) Cards() []Card {
	items := s.Items()
	cards := make([]Card, len(items))
	for i, it := range items {
		cards[i] = NewCard(it, s.tier, i < RecentCount)
	}
	return cards
}

// Facets returns a snapshot of the accumulated category facets.
func (s *Store) Facets() []CategoryFacet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CategoryFacet, len(s.facets))
	copy(out, s.facets)
	return out
}

// HasMore reports whether another page can be requested.
func (s *Store) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && s.currentPage < s.totalPages
}

// Empty reports whether the first page completed with zero results.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && len(s.items) == 0
}

// Loading reports whether a first-page load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoadingMore reports whether a load-more request is in flight.
func (s *Store) LoadingMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingMore
}

// Page returns the current page cursor and the server-reported total.
func (s *Store) Page() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage, s.totalPages
}
