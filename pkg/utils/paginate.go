package utils

// Paginator tracks a 1-indexed page over a list of fixed page size.
type Paginator struct {
	size int
	page int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator{size: pageSize, page: 1}
}

func (p *Paginator) Page() int     { return p.page }
func (p *Paginator) PageSize() int { return p.size }

func (p *Paginator) TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + p.size - 1) / p.size
}

// Next moves forward, never past the last page.
func (p *Paginator) Next(count int) int {
	if total := p.TotalPages(count); p.page < total {
		p.page++
	}
	return p.page
}

// Prev moves back, never before page 1.
func (p *Paginator) Prev() int {
	if p.page > 1 {
		p.page--
	}
	return p.page
}

// SetPage selects a page without bounds checks. Window handles out of range pages.
func (p *Paginator) SetPage(page int) {
	p.page = page
}

// Goto selects a page clamped to [1, TotalPages(count)].
func (p *Paginator) Goto(page, count int) int {
	total := p.TotalPages(count)
	switch {
	case page > total:
		page = total
	case page < 1:
		page = 1
	}
	if page < 1 {
		page = 1
	}
	p.page = page
	return p.page
}

// Window returns the [lo, hi) bounds of the current page within count items.
// An out of range page yields an empty window.
func (p *Paginator) Window(count int) (lo, hi int) {
	if p.page < 1 {
		return 0, 0
	}
	lo = (p.page - 1) * p.size
	if lo >= count {
		return 0, 0
	}
	hi = lo + p.size
	if hi > count {
		hi = count
	}
	return lo, hi
}

// PageOf slices items to the paginator's current page.
func PageOf[T any](p *Paginator, items []T) []T {
	lo, hi := p.Window(len(items))
	return items[lo:hi]
}
