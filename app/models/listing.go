package models

import "strings"

// SortKey is the `sort` query parameter of the product listing.
type SortKey string

const (
	SortNone      SortKey = ""
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
)

const (
	// ListingCap bounds the listing before it is paginated, so a listing
	// never exposes more than ListingCap products whatever the page size.
	// TODO: revisit with the storefront owners; the cap hides every product
	// past the tenth and looks unintended.
	ListingCap = 10

	ListingPageSize = 20
)

// ParseSortKey maps raw input onto a known key. Unknown input sorts as SortNone.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.TrimSpace(raw)); key {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return key
	}
	return SortNone
}

type ListingOptions struct {
	// Category is matched exactly, case-sensitive, against Category.Name.
	Category string
	Sort     SortKey
}

type OrderClause struct {
	Column string
	Desc   bool
}

func (o OrderClause) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// ListingPlan is the storage-independent description of a listing query.
type ListingPlan struct {
	CategoryName string
	NewestOnly   bool
	OrderBy      []OrderClause
	Limit        int
}

var defaultOrder = []OrderClause{{Column: "created_at", Desc: true}}

func BuildListingPlan(opts ListingOptions) ListingPlan {
	plan := ListingPlan{
		CategoryName: opts.Category,
		Limit:        ListingCap,
	}

	switch opts.Sort {
	case SortNewest:
		plan.NewestOnly = true
		plan.OrderBy = []OrderClause{{Column: "category_id"}}
	case SortPriceAsc:
		plan.OrderBy = []OrderClause{{Column: "price"}}
	case SortPriceDesc:
		plan.OrderBy = []OrderClause{{Column: "price", Desc: true}}
	default:
		plan.OrderBy = append([]OrderClause(nil), defaultOrder...)
	}

	return plan
}
