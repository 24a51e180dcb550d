// Package metadata persists the CLI's browsing preferences between
// sessions in a key/value table of the local cache.
package metadata

import (
	"context"
)

type Repository interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
	Clear(ctx context.Context) error
}

// Preferences is the browsing state restored on start-up. Empty fields
// mean "use the default".
type Preferences struct {
	Filter   string
	Category string
	Search   string
	Sort     string
	LastSync string
}

const (
	keyFilter   = "filter"
	keyCategory = "category"
	keySearch   = "search"
	keySort     = "sort"
	keyLastSync = "last_sync"
)
