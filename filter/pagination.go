package filter

import "github.com/jrsteele09/go-storefront-client/catalog"

// View is one derived page of the filtered catalog.
type View struct {
	Products   []catalog.Product // the visible page, in source order
	Page       int               // effective page after clamping
	PageCount  int               // total pages for the filtered set
	TotalCount int               // filtered products across all pages
}

// ClampPage restricts page to [0, ceil(total/pageSize)-1]. An empty result
// set has a single valid page, 0.
func ClampPage(page, total, pageSize int) int {
	if page < 0 {
		return 0
	}
	pageCount := PageCount(total, pageSize)
	if page > pageCount-1 {
		return pageCount - 1
	}
	return page
}

// PageCount returns the number of pages needed for total items, at least 1.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	count := (total + pageSize - 1) / pageSize
	if count < 1 {
		return 1
	}
	return count
}

// Paginate slices one page out of the filtered list, clamping the page
// index against the list's actual size.
func Paginate(filtered []catalog.Product, page, pageSize int) View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(filtered)
	effective := ClampPage(page, total, pageSize)

	start := effective * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return View{
		Products:   filtered[start:end],
		Page:       effective,
		PageCount:  PageCount(total, pageSize),
		TotalCount: total,
	}
}

// Apply derives the filtered set and paginates it in one synchronous step,
// so a criteria or catalog change is always reflected before the next read.
func Apply(products []catalog.Product, criteria Criteria, pageSize int) View {
	return Paginate(Derive(products, criteria), criteria.Page, pageSize)
}
