// Package cursor implements the incremental "load more" pagination state of
// the campaign listing: which items are loaded, where the next page starts
// and whether the server is likely to have more.
package cursor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/models"
)

// DefaultPageSize matches the server default limit.
const DefaultPageSize = 10

// State is the cursor lifecycle state.
type State int

const (
	Idle State = iota
	Loading
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Fetcher retrieves one page of the listing.
type Fetcher interface {
	ListCampaigns(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error)
}

// Snapshot is a point-in-time copy of the cursor state.
type Snapshot struct {
	Filter     models.Filter
	Items      []models.CampaignSummary
	NextOffset int
	HasMore    bool
	State      State
	Err        error
}

// IsLoading reports whether a request is outstanding.
func (s Snapshot) IsLoading() bool { return s.State == Loading }

// Cursor accumulates campaign pages for one filter. At most one request is
// outstanding at a time. All methods are safe for concurrent use; no lock is
// held while a page is being fetched.
type Cursor struct {
	fetcher  Fetcher
	pageSize int

	mu         sync.Mutex
	filter     models.Filter
	items      []models.CampaignSummary
	seen       map[string]struct{}
	nextOffset int
	hasMore    bool
	state      State
	err        error
	generation uint64
	cancel     context.CancelFunc
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithPageSize sets the limit sent with every request.
func WithPageSize(n int) Option {
	return func(c *Cursor) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New returns an idle cursor for filter with nothing loaded.
func New(fetcher Fetcher, filter models.Filter, opts ...Option) *Cursor {
	c := &Cursor{
		fetcher:  fetcher,
		pageSize: DefaultPageSize,
		filter:   filter,
		seen:     map[string]struct{}{},
		hasMore:  true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetFilter discards everything loaded so far, abandons any in-flight
// request and fetches the first page for filter.
func (c *Cursor) SetFilter(ctx context.Context, filter models.Filter) error {

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.filter = filter
	c.items = nil
	c.seen = map[string]struct{}{}
	c.nextOffset = 0
	c.hasMore = true
	c.state = Idle
	c.err = nil

	fetchCtx, req, gen := c.beginLocked(ctx)
	c.mu.Unlock()

	_, err := c.fetch(fetchCtx, req, gen)
	return err
}

// LoadMore fetches the next page. It returns false without contacting the
// server when a request is already outstanding or the listing is exhausted.
func (c *Cursor) LoadMore(ctx context.Context) (bool, error) {

	c.mu.Lock()
	if c.state == Loading || !c.hasMore {
		c.mu.Unlock()
		return false, nil
	}
	fetchCtx, req, gen := c.beginLocked(ctx)
	c.mu.Unlock()

	return c.fetch(fetchCtx, req, gen)
}

// Snapshot returns a copy of the current state.
func (c *Cursor) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Filter:     c.filter,
		Items:      append([]models.CampaignSummary(nil), c.items...),
		NextOffset: c.nextOffset,
		HasMore:    c.hasMore,
		State:      c.state,
		Err:        c.err,
	}
}

// Close abandons any in-flight request.
func (c *Cursor) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	if c.state == Loading {
		c.state = Idle
	}
}

// beginLocked moves the cursor to Loading and prepares the request.
// c.mu must be held.
func (c *Cursor) beginLocked(ctx context.Context) (context.Context, models.PageRequest, uint64) {
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = Loading
	req := models.PageRequest{Filter: c.filter, Offset: c.nextOffset, Limit: c.pageSize}
	return fetchCtx, req, c.generation
}

func (c *Cursor) fetch(ctx context.Context, req models.PageRequest, gen uint64) (bool, error) {

	page, err := c.fetcher.ListCampaigns(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false, nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err == nil && page == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		if !errors.Is(err, common.ErrFetchFailed) && !errors.Is(err, common.ErrUnavailable) {
			err = fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
		}
		c.state = Idle
		c.err = err
		return false, err
	}

	c.err = nil
	for _, item := range page.Campaigns {
		if _, dup := c.seen[item.ID]; dup {
			continue
		}
		c.seen[item.ID] = struct{}{}
		c.items = append(c.items, item)
	}
	c.nextOffset += len(page.Campaigns)
	c.hasMore = page.HasMore && len(page.Campaigns) == req.Limit

	if c.hasMore {
		c.state = Idle
	} else {
		c.state = Exhausted
	}
	return true, nil
}
