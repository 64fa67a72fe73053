package common

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams is the generic read contract: page >= 1, limit >= 1,
// default sort is newest first by creation time.
type PageParams struct {
	Page    int
	Limit   int
	Query   string
	SortBy  string
	SortAsc bool
	hasSort bool
}

func (p PageParams) Skip() int64    { return int64((p.Page - 1) * p.Limit) }
func (p PageParams) Limit64() int64 { return int64(p.Limit) }

// SortField returns the effective sort field and direction, falling back to
// createdAt descending when the caller did not ask for anything.
func (p PageParams) SortField() (string, int) {
	if !p.hasSort {
		return "createdAt", -1
	}
	dir := -1
	if p.SortAsc {
		dir = 1
	}
	return p.SortBy, dir
}

// ParsePageParams reads page/limit/query/sortBy/sortType from the query
// string. Out-of-range values clamp to defaults rather than failing, the
// way the original surface behaved.
func ParsePageParams(values url.Values) PageParams {
	p := PageParams{Page: DefaultPage, Limit: DefaultLimit}

	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	p.Query = strings.TrimSpace(values.Get("query"))

	sortBy := strings.TrimSpace(values.Get("sortBy"))
	sortType := values.Get("sortType")
	if sortType == "" {
		sortType = values.Get("order")
	}
	if sortBy != "" {
		p.SortBy = sortBy
		p.SortAsc = sortType == "asc"
		p.hasSort = true
	}
	return p
}
