package paginate

import (
	"strconv"
	"strings"
)

// Resolution records how the requested page number was turned into a page.
type Resolution int

const (
	// Resolved means the requested page existed and was returned.
	Resolved Resolution = iota
	// ResolvedDefault means no page was requested and page 1 was returned.
	ResolvedDefault
	// FallbackNotInteger means the page was not an integer; page 1 was returned.
	FallbackNotInteger
	// FallbackOutOfRange means the page was below 1 or past the end; the last page was returned.
	FallbackOutOfRange
)

func (r Resolution) String() string {
	switch r {
	case Resolved:
		return "resolved"
	case ResolvedDefault:
		return "default"
	case FallbackNotInteger:
		return "fallback_not_integer"
	case FallbackOutOfRange:
		return "fallback_out_of_range"
	}
	return "unknown"
}

func (r Resolution) IsFallback() bool {
	return r == FallbackNotInteger || r == FallbackOutOfRange
}

type Page[T any] struct {
	Items      []T
	Number     int
	NumPages   int
	PerPage    int
	Count      int
	Requested  string
	Resolution Resolution
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p Page[T]) NextPage() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

func (p Page[T]) PreviousPage() int {
	if p.HasPrevious() {
		return p.Number - 1
	}
	return p.Number
}

// PageRange lists every page number, 1 through NumPages.
func (p Page[T]) PageRange() []int {
	pages := make([]int, p.NumPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// NumPages is the page count for count items; an empty collection still has one page.
func NumPages(count, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if count == 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// Paginate slices items into the page named by raw. It never fails:
// a missing page is page 1, a non-integer page is page 1, and a page
// below 1 or beyond the last page is the last page.
func Paginate[T any](items []T, raw string, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}

	page := Page[T]{
		PerPage:   perPage,
		Count:     len(items),
		NumPages:  NumPages(len(items), perPage),
		Requested: raw,
	}

	raw = strings.TrimSpace(raw)
	switch n, err := strconv.Atoi(raw); {
	case raw == "":
		page.Number = 1
		page.Resolution = ResolvedDefault
	case err != nil:
		page.Number = 1
		page.Resolution = FallbackNotInteger
	case n < 1 || n > page.NumPages:
		page.Number = page.NumPages
		page.Resolution = FallbackOutOfRange
	default:
		page.Number = n
		page.Resolution = Resolved
	}

	start := (page.Number - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	page.Items = items[start:end]

	return page
}
