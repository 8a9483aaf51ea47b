// Package services provides application-level orchestration services
package services

import "github.com/luckyspin/spinwheel-go/pkg/config"

// Pagination describes one page of a newest-first listing.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalRecords int  `json:"totalRecords"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// clampPageParams normalizes page/limit to positive values within the
// configured bounds; zero or negative inputs fall back to the defaults.
func clampPageParams(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = config.DefaultPageSize
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	return page, limit
}

// buildPagination derives the page flags for a listing.
// hasNextPage is true iff page*limit < totalRecords.
func buildPagination(page, limit, totalRecords int) Pagination {
	totalPages := (totalRecords + limit - 1) / limit
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		HasNextPage:  page*limit < totalRecords,
		HasPrevPage:  page > 1,
	}
}
