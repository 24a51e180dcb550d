package services

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

const (
	DefaultLimit  = 10
	MaxLimit      = 100
	FeaturedLimit = 3
	UrgentLimit   = 6
	CardsLimit    = 12
)

// ParsePageRequest turns raw query values into a page request. Missing or
// non-numeric numbers take their defaults before normalisation.
func ParsePageRequest(offset, limit, filter string) models.PageRequest {
	return NormalizePageRequest(models.PageRequest{
		Offset: atoiOr(offset, 0),
		Limit:  atoiOr(limit, DefaultLimit),
		Filter: models.ParseFilter(filter),
	})
}

// NormalizePageRequest clamps the offset to >= 0 and the limit to
// [1, MaxLimit], and replaces unknown filters with models.FilterAll.
func NormalizePageRequest(req models.PageRequest) models.PageRequest {
	req.Offset = max(req.Offset, 0)
	req.Limit = min(max(req.Limit, 1), MaxLimit)
	req.Filter = models.ParseFilter(string(req.Filter))
	return req
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
