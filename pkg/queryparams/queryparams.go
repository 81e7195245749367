package queryparams

// ListParams carries the common list-endpoint query parameters.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Name    string `query:"name"`
	Status  string `query:"status"`
}

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// DefaultListParams returns sane defaults sorted by the given column.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate clamps pagination values into their allowed ranges.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset converts page/per-page into a SQL offset.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages returns the page count for a total row count.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}

// PaginationMeta describes one page of a paginated result.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult is the generic list-endpoint response envelope.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
