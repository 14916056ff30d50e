package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mert/facesmash/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// ParsePaginationParams extracts page and limit from the request, falling back
// to defaults for anything missing or out of range.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", strconv.Itoa(DefaultPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}

// NewPagination builds the pagination metadata block for a list response.
// count is the number of items on the current page.
func NewPagination(totalItems int64, page, limit, count int) dto.Pagination {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.Pagination{
		Current:       page,
		Total:         totalPages,
		Count:         count,
		TotalStudents: totalItems,
	}
}

// CalculateOffset converts a 1-based page number into a row offset.
func CalculateOffset(page, limit int) uint64 {
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * limit)
}
