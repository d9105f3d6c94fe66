package domain

// Pagination is the cursor block every paginated admin endpoint returns.
// Pages are 1-based on the wire; gateways own the conversion from the
// 0-based pages the controllers use.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}
