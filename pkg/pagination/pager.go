package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int32.
	MaxPage      = 1_000_000
)

// Pager is an offset based page request. Stores fill in Total.
type Pager struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func NewPager(page, limit int) *Pager {
	if page <= 0 {
		page = 1
	}

	if page > MaxPage {
		page = MaxPage
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Pager{Page: page, Limit: limit}
}

func (p *Pager) SetTotal(total int64) {
	p.Total = total
}

// Do returns the offset and limit to query with.
func (p *Pager) Do() (int, int) {
	return (p.Page - 1) * p.Limit, p.Limit
}

func (p *Pager) TotalPages() int {
	if p.Limit == 0 {
		return 0
	}

	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
