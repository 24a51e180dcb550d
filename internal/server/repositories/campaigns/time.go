package campaigns

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/common"
)

// FormatTime renders t as the ISO-8601 string used on the wire.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseTime accepts RFC 3339 timestamps and plain dates. Empty input
// returns the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad timestamp %q", common.ErrValidation, s)
}
