package models

import "strings"

// Filter selects the server-side ordering of the campaign listing.
type Filter string

const (
	FilterCloseToGoal   Filter = "close-to-goal"
	FilterJustLaunched  Filter = "just-launched"
	FilterNeedsMomentum Filter = "needs-momentum"
	FilterAll           Filter = "all"
)

// DefaultFilter is used when a request names no filter.
const DefaultFilter = FilterNeedsMomentum

// Filters lists the known filters in menu order.
var Filters = []Filter{FilterCloseToGoal, FilterJustLaunched, FilterNeedsMomentum, FilterAll}

// ParseFilter maps user input to a Filter. Empty input yields DefaultFilter,
// anything unknown yields FilterAll.
func ParseFilter(s string) Filter {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultFilter
	}
	for _, f := range Filters {
		if string(f) == s {
			return f
		}
	}
	return FilterAll
}

// PageRequest is one window of the campaign listing.
type PageRequest struct {
	Filter Filter `json:"filter"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// CampaignPage is the listing endpoint response. HasMore only says a full
// page came back; it is not an exact remaining count.
type CampaignPage struct {
	Campaigns []CampaignSummary `json:"campaigns"`
	Offset    int               `json:"offset"`
	Limit     int               `json:"limit"`
	Filter    Filter            `json:"filter"`
	HasMore   bool              `json:"hasMore"`
}

// ErrorResponse is the body of failed HTTP responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
