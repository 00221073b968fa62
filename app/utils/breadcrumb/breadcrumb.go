package breadcrumb

type Breadcrumb struct {
	Name string
	URL  string
}

func Home() []Breadcrumb {
	return []Breadcrumb{{Name: "Home", URL: "/"}}
}

// Trail prepends the home crumb to crumbs.
func Trail(crumbs ...Breadcrumb) []Breadcrumb {
	return append(Home(), crumbs...)
}
