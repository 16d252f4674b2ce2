package paging

// Page holds offset/limit pagination metadata derived from a total count.
type Page struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	HasNext     bool
	HasPrev     bool
	NextPage    *int
	PrevPage    *int

	limit int
}

// New computes page metadata for a 1-based page number, a per-page limit,
// and the total number of matching items. A page past the end is valid and
// simply yields no items; callers inspect HasNext/TotalPages.
func New(page, limit int, totalItems int64) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	p := Page{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
		limit:       limit,
	}

	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}

	return p
}

// Offset returns the number of rows to skip for the current page.
func (p Page) Offset() int64 {
	return int64(p.CurrentPage-1) * int64(p.limit)
}

// Limit returns the per-page row bound.
func (p Page) Limit() int64 {
	return int64(p.limit)
}

// InRange reports whether the current page can contain any items.
func (p Page) InRange() bool {
	return p.TotalItems > 0 && p.Offset() < p.TotalItems
}
