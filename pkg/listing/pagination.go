package listing

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TotalPages is ceil(total/pageSize). An empty collection still has one page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the page-th slice (1-based) of items. Out of range pages yield an
// empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Pager holds the pagination state of a listing.
//
// When the collection shrinks so that the page falls beyond the last page, the page is
// reset to 1 rather than to the last valid page.
type Pager struct {
	page     int
	pageSize int
	total    int
}

func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &Pager{page: 1, pageSize: pageSize}
}

func (p *Pager) Page() int       { return p.page }
func (p *Pager) PageSize() int   { return p.pageSize }
func (p *Pager) Total() int      { return p.total }
func (p *Pager) TotalPages() int { return TotalPages(p.total, p.pageSize) }

func (p *Pager) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
	p.clamp()
}

// SetPageSize changes the page size and goes back to the first page.
func (p *Pager) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	p.pageSize = size
	p.page = 1
}

// SetTotal records the size of the backing collection.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.clamp()
}

func (p *Pager) clamp() {
	if p.page > p.TotalPages() {
		p.page = 1
	}
}

// Page is a slice of items plus the state that produced it.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Apply slices items with the pager, after updating its total.
func Apply[T any](p *Pager, items []T) Page[T] {
	p.SetTotal(len(items))
	return Page[T]{
		Items:      Paginate(items, p.page, p.pageSize),
		Page:       p.page,
		PageSize:   p.pageSize,
		Total:      p.total,
		TotalPages: p.TotalPages(),
	}
}
