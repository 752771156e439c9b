package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// PageWindow returns the page numbers to display for a paginated listing.
// At most five pages are shown: the window stays centered on the current
// page and clamps to the first or last five pages near the boundaries.
func PageWindow(currentPage, totalPages int) []int {
	if totalPages < 1 {
		return []int{}
	}

	size := constants.PageWindowSize
	if totalPages <= size {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := currentPage - size/2
	switch {
	case currentPage <= size/2+1:
		start = 1
	case currentPage >= totalPages-size/2:
		start = totalPages - size + 1
	}

	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
