// Package store holds the in-memory order list state: client-side
// pagination, local and server-side filtering, per-order selection, and
// loading/error bookkeeping. It is the single owner of that state; the
// presentation layer reads it through accessors and mutates it only through
// the operations defined here.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"orderdesk/internal/models"
	"orderdesk/pkg/logger"
)

// PageSize is the fixed number of orders shown per page.
const PageSize = 10

// User-facing messages stored in place of raw errors.
const (
	msgFetchFailed  = "Failed to fetch orders. Please try again."
	msgLoadMore     = "Failed to load more orders. Please try again."
	msgSearchFailed = "Failed to search orders. Please try again."
)

// OrderFetcher is the narrow Remote Order Service surface the store consumes.
type OrderFetcher interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	FetchOrdersPage(ctx context.Context, page, limit int) ([]models.Order, error)
	SearchOrders(ctx context.Context, filters models.SearchFilters) ([]models.Order, error)
	FetchOrderByID(ctx context.Context, id int) (*models.OrderDetail, error)
}

// Store is the order list state container. The list is in exactly one of two
// modes at a time: paginated (orders is a prefix of allOrders, sliced into
// pages of PageSize) or filtered (orders is a filtered view, pagination
// disabled).
//
// Overlapping LoadInitial and filter operations are not serialized against
// each other: a slow LoadInitial response commits when it arrives and can
// overwrite a fresher filtered view. Callers that need stronger ordering must
// serialize those calls themselves.
type Store struct {
	fetcher OrderFetcher
	logger  logger.Logger

	mu            sync.Mutex
	allOrders     []models.Order
	orders        []models.Order
	filters       models.SearchFilters
	currentPage   int
	hasMoreData   bool
	isFiltering   bool
	selectedOrder *models.OrderDetail
	isLoading     bool
	isLoadingMore bool
	lastError     string

	onChange func()
}

// New creates a Store backed by the given fetcher.
func New(fetcher OrderFetcher, l logger.Logger) *Store {
	if fetcher == nil {
		panic("store.New: nil fetcher")
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Store{
		fetcher:     fetcher,
		logger:      l,
		currentPage: 1,
	}
}

// OnChange registers a callback invoked after every committed state change.
// The callback runs outside the store's lock, on the goroutine that performed
// the operation. Must be set before the store is used.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// LoadInitial fetches the first page and the full order set, resetting the
// store to paginated mode on page 1. The full fetch is what tells the store
// the total count, since the service provides no pagination metadata. On
// failure the previous list state is left untouched.
func (s *Store) LoadInitial(ctx context.Context) error {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.currentPage = 1
	s.isFiltering = false
	s.mu.Unlock()
	s.notify()

	var page, all []models.Order

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.fetcher.FetchOrdersPage(gctx, 1, PageSize)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = s.fetcher.FetchOrders(gctx)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.lastError = msgFetchFailed
		s.mu.Unlock()
		s.notify()
		s.logger.Error("Failed to load orders", "error", err)
		return err
	}

	s.allOrders = all
	s.orders = page
	s.hasMoreData = len(all) > PageSize
	s.mu.Unlock()
	s.notify()

	s.logger.Debug("Loaded initial orders", "total", len(all), "page", len(page))
	return nil
}

// FetchAllOrders is the historical name for LoadInitial.
func (s *Store) FetchAllOrders(ctx context.Context) error {
	return s.LoadInitial(ctx)
}

// LoadMoreOrders appends the next page to the visible list. It is a no-op
// unless more data is known to exist, no load is already in flight, and the
// list is in paginated mode. Rapid sequential triggers after completion are
// the caller's job to debounce; the store only guards true concurrency.
func (s *Store) LoadMoreOrders(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMoreData || s.isLoadingMore || s.isLoading || s.isFiltering {
		s.mu.Unlock()
		return nil
	}
	nextPage := s.currentPage + 1
	s.isLoadingMore = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()

	batch, err := s.fetcher.FetchOrdersPage(ctx, nextPage, PageSize)

	s.mu.Lock()
	s.isLoadingMore = false
	if err != nil {
		s.lastError = msgLoadMore
		s.mu.Unlock()
		s.notify()
		s.logger.Error("Failed to load more orders", "error", err, "page", nextPage)
		return err
	}

	if len(batch) == 0 {
		// The server ran out before the captured total said it would.
		s.hasMoreData = false
		s.mu.Unlock()
		s.notify()
		return nil
	}

	s.orders = append(s.orders, batch...)
	s.currentPage = nextPage
	s.hasMoreData = len(s.orders) < len(s.allOrders)
	s.mu.Unlock()
	s.notify()

	s.logger.Debug("Loaded more orders", "page", nextPage, "count", len(batch))
	return nil
}

// SetSearchFilters replaces the active filter criteria. Pure setter, no
// network side effect; ApplyFilters or FilterOrders put it into effect.
func (s *Store) SetSearchFilters(filters models.SearchFilters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
	s.notify()
}

// ApplyFilters runs a server-side search with the current filters and
// replaces the visible list with the result. Filtered results are not
// paginated. On failure the previous list is left untouched.
func (s *Store) ApplyFilters(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()

	result, err := s.fetcher.SearchOrders(ctx, filters)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.lastError = msgSearchFailed
		s.mu.Unlock()
		s.notify()
		s.logger.Error("Failed to search orders", "error", err)
		return err
	}

	s.orders = result
	s.isFiltering = true
	s.hasMoreData = false
	s.mu.Unlock()
	s.notify()

	return nil
}

// FilterOrders filters the already-fetched order set locally, with no
// network round trip, so each keystroke gets instant feedback. An empty
// query with no status filter exits filtered mode and reloads the paginated
// view. Otherwise the set is narrowed by the status filter first, then by a
// case-insensitive substring match of query against customer id, customer
// name, and status.
func (s *Store) FilterOrders(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	status := s.filters.Status

	if query == "" && status == "" {
		s.mu.Unlock()
		return s.LoadInitial(ctx)
	}

	base := s.allOrders
	if status != "" {
		base = filterByStatus(base, status)
	}

	if query != "" {
		base = filterByQuery(base, query)
	}

	s.orders = base
	s.isFiltering = true
	s.hasMoreData = false
	s.mu.Unlock()
	s.notify()

	return nil
}

func filterByStatus(orders []models.Order, status models.OrderStatus) []models.Order {
	want := strings.ToLower(string(status))
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.ToLower(string(o.Status)) == want {
			out = append(out, o)
		}
	}
	return out
}

func filterByQuery(orders []models.Order, query string) []models.Order {
	q := strings.ToLower(query)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strconv.Itoa(o.CustomerID), query) ||
			strings.Contains(strings.ToLower(o.CustomerName), q) ||
			strings.Contains(strings.ToLower(string(o.Status)), q) {
			out = append(out, o)
		}
	}
	return out
}

// ResetFilters clears all filter criteria and reloads the paginated view.
func (s *Store) ResetFilters(ctx context.Context) error {
	s.mu.Lock()
	s.filters = models.SearchFilters{}
	s.mu.Unlock()
	s.notify()

	return s.LoadInitial(ctx)
}

// GetOrderByID fetches the detail record for id and makes it the current
// selection. The selection has its own lifecycle: list refreshes and filter
// changes do not invalidate it, and a failed fetch keeps the prior selection.
func (s *Store) GetOrderByID(ctx context.Context, id int) error {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()

	detail, err := s.fetcher.FetchOrderByID(ctx, id)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.lastError = fmt.Sprintf("Failed to fetch order #%d. Please try again.", id)
		s.mu.Unlock()
		s.notify()
		s.logger.Error("Failed to fetch order detail", "error", err, "orderID", id)
		return err
	}

	s.selectedOrder = detail
	s.mu.Unlock()
	s.notify()

	return nil
}

// SelectOrder is the selection-triggered-navigation alias for GetOrderByID.
func (s *Store) SelectOrder(ctx context.Context, id int) error {
	return s.GetOrderByID(ctx, id)
}

// ClearSelectedOrder drops the current selection. Idempotent.
func (s *Store) ClearSelectedOrder() {
	s.mu.Lock()
	s.selectedOrder = nil
	s.mu.Unlock()
	s.notify()
}

// Orders returns a copy of the currently visible order list.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// SelectedOrder returns the current selection, or nil when none is set.
func (s *Store) SelectedOrder() *models.OrderDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedOrder == nil {
		return nil
	}
	detail := *s.selectedOrder
	detail.Lines = append([]models.ProductLine(nil), s.selectedOrder.Lines...)
	return &detail
}

// Filters returns the active search criteria.
func (s *Store) Filters() models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// CurrentPage returns the last committed page number of the paginated view.
func (s *Store) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// HasMoreData reports whether further pages may exist. Always false in
// filtered mode.
func (s *Store) HasMoreData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMoreData
}

// IsFiltering reports whether the visible list is a filtered view rather
// than a paginated one.
func (s *Store) IsFiltering() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isFiltering
}

// IsLoading reports whether an initial load, search, or detail fetch is in
// flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// IsLoadingMore reports whether a load-more request is in flight.
func (s *Store) IsLoadingMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoadingMore
}

// LastError returns the user-facing message of the most recent failed
// operation, or the empty string when the last operation succeeded.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
