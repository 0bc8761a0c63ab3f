package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// CursorParams represents cursor pagination parameters for the paged
// restaurant listing.
type CursorParams struct {
	Limit  int
	Cursor string
}

// GetCursorParams extracts cursor pagination parameters from the request.
func GetCursorParams(c echo.Context) CursorParams {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if limit <= 0 || limit > 100 {
		limit = 20 // Default batch size
	}

	return CursorParams{
		Limit:  limit,
		Cursor: c.QueryParam("cursor"),
	}
}

// TotalPages reports how many fixed-size pages a list of length total
// occupies. An empty list still occupies one page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PageBounds returns the half-open slice bounds for a 1-based page
// number, clamped to the list length.
func PageBounds(page, pageSize, total int) (int, int) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}
