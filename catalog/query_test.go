package catalog

import (
	"strings"
	"testing"
)

func TestQueryStateEncode(t *testing.T) {
	q := QueryState{
		Search:   "abc",
		Category: "art",
		Month:    "03",
		Sort:     SortOldest,
		Page:     2,
	}
	got := q.Encode()
	want := "page=2&search=abc&category=art&month=03&sortBy=postDate&sortOrder=ASC&limit=24"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestQueryStateEncodeDefaults(t *testing.T) {
	got := QueryState{Sort: SortMostRecent}.Encode()
	want := "page=1&search=&category=&month=&sortBy=postDate&sortOrder=DESC&limit=24"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestQueryStateEncodeEscapes(t *testing.T) {
	q := QueryState{Search: "a b&c", Category: "k-pop idol", Page: 1}
	got := q.Encode()
	if strings.Contains(got, "a b&c") {
		t.Errorf("search value not escaped: %q", got)
	}
	if !strings.Contains(got, "search=a+b%26c") {
		t.Errorf("unexpected escaping: %q", got)
	}
}

func TestSortOrder(t *testing.T) {
	if got := SortMostRecent.Order(); got != "DESC" {
		t.Errorf("mostRecent order = %q, want DESC", got)
	}
	if got := SortOldest.Order(); got != "ASC" {
		t.Errorf("oldest order = %q, want ASC", got)
	}
	if got := SortOption("").Order(); got != "ASC" {
		t.Errorf("default order = %q, want ASC", got)
	}
}

func TestWithPageKeepsFilters(t *testing.T) {
	q := QueryState{Search: "x", Month: "07", Category: "asmr", Sort: SortMostRecent, Page: 1}
	next := q.WithPage(3)
	if next.Page != 3 {
		t.Errorf("Page = %d, want 3", next.Page)
	}
	q.Page = 3
	if next != q {
		t.Error("WithPage must not change filter fields")
	}
}
