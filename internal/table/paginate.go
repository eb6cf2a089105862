package table

// DefaultPageSize matches the list views' historical page length.
const DefaultPageSize = 10

// Paginator slices a row set into fixed-size pages. The active page is
// clamped to the valid range and resets to 0 only when a shrinking row
// set leaves it out of range, never while it is still valid.
type Paginator[R any] struct {
	rows     []R
	pageSize int
	active   int
}

func NewPaginator[R any](rows []R, pageSize int) *Paginator[R] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator[R]{rows: rows, pageSize: pageSize}
}

// PageCount is ceil(len(rows)/pageSize).
func (p *Paginator[R]) PageCount() int {
	return (len(p.rows) + p.pageSize - 1) / p.pageSize
}

func (p *Paginator[R]) ActivePage() int { return p.active }
func (p *Paginator[R]) PageSize() int   { return p.pageSize }

// SetActivePage clamps the requested index into [0, PageCount).
func (p *Paginator[R]) SetActivePage(i int) {
	if i < 0 {
		i = 0
	}
	if n := p.PageCount(); i >= n {
		if n == 0 {
			i = 0
		} else {
			i = n - 1
		}
	}
	p.active = i
}

// SetRows replaces the underlying rows, keeping the active page when it is
// still in range.
func (p *Paginator[R]) SetRows(rows []R) {
	p.rows = rows
	p.resetIfOutOfRange()
}

func (p *Paginator[R]) SetPageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	p.pageSize = n
	p.resetIfOutOfRange()
}

func (p *Paginator[R]) resetIfOutOfRange() {
	if p.active >= p.PageCount() && p.active != 0 {
		p.active = 0
	}
}

// Page returns the active page's slice; never more than pageSize rows.
func (p *Paginator[R]) Page() []R {
	start := p.active * p.pageSize
	if start >= len(p.rows) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.rows) {
		end = len(p.rows)
	}
	return p.rows[start:end]
}
