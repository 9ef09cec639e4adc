package query

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return f.PageSize
}

// Normalized returns the filter with defaults applied, for echoing back to clients.
func (f PageFilter) Normalized() PageFilter {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return PageFilter{Page: page, PageSize: f.Limit()}
}
