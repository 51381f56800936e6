package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	MinPage         = 1
	DefaultPageSize = 10
	PublicPageSize  = 12
	MaxPageSize     = 100
	// MaxPage keeps offsets within int32 for every page size.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaginationParams normalises page into [MinPage, MaxPage] and limit,
// falling back to defaultLimit when limit is out of range.
func NewPaginationParams(page, limit, defaultLimit int) PaginationParams {
	if page < MinPage {
		page = MinPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 || limit > MaxPageSize {
		limit = defaultLimit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(MinPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	return NewPaginationParams(page, limit, defaultLimit)
}

// TotalPages returns the number of pages needed for total items.
func (p PaginationParams) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
