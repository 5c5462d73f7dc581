package catalog

import (
	"net/url"
	"strconv"
)

// PageSize is the fixed number of items requested per page.
const PageSize = 24

// SortOption selects the postDate sort direction.
type SortOption string

const (
	SortMostRecent SortOption = "mostRecent"
	SortOldest     SortOption = "oldest"
)

// Order returns the SQL-style sort order the server expects.
func (s SortOption) Order() string {
	if s == SortMostRecent {
		return "DESC"
	}
	return "ASC"
}

// QueryState is the user-controlled search/filter/sort/page state of one
// catalog view. Page resets to 1 whenever any filter field changes.
type QueryState struct {
	Search   string
	Month    string // two-digit month, "" for all
	Category string
	Sort     SortOption
	Page     int
}

// Encode renders the canonical query string. Field order is fixed:
// page, search, category, month, sortBy, sortOrder, limit.
func (q QueryState) Encode() string {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return "page=" + strconv.Itoa(page) +
		"&search=" + url.QueryEscape(q.Search) +
		"&category=" + url.QueryEscape(q.Category) +
		"&month=" + url.QueryEscape(q.Month) +
		"&sortBy=postDate" +
		"&sortOrder=" + q.Sort.Order() +
		"&limit=" + strconv.Itoa(PageSize)
}

// WithPage returns a copy of the state pointing at the given page.
func (q QueryState) WithPage(page int) QueryState {
	q.Page = page
	return q
}
