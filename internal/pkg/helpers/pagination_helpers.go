package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1
)

// Page is a 1-based page request clamped to the allowed sizes
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number and size. Out-of-range sizes fall back to DefaultPageSize.
func NewPage(number, size int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// PageFromQuery reads ?page= and ?size=, ignoring unparsable values
func PageFromQuery(c *gin.Context) Page {
	number, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return NewPage(number, size)
}

// Offset is the number of rows skipped before this page
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Info describes this page of a listing with totalItems rows.
// An empty listing still has one (empty) page.
func (p Page) Info(totalItems int64) dto.PaginationInfo {
	totalPages := int((totalItems + int64(p.Size) - 1) / int64(p.Size))
	if totalPages == 0 {
		totalPages = 1
	}

	current := p.Number
	if current > totalPages {
		current = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: current,
		TotalPages:  totalPages,
		PageSize:    p.Size,
		TotalItems:  totalItems,
	}
}
